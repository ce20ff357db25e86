package etherscan

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const etherDecimals = 18

// WeiToEther converts an amount of wei into ether.
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(wei, -etherDecimals)
}

// EtherToWei converts an amount of ether into wei, truncating any
// fraction below one wei.
func EtherToWei(ether decimal.Decimal) *big.Int {
	return ether.Shift(etherDecimals).BigInt()
}
