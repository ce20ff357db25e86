package etherscan_test

import (
	"context"
	"math/big"
	"net/http"

	"github.com/jarcoal/httpmock"
	etherscan "github.com/neoctobers/etherscan-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AccountsClient", func() {
	Describe("Balance", func() {
		It("returns the balance as an integer amount of wei", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					Expect(req.PostForm.Get("apikey")).To(Equal("testkey"))
					Expect(req.PostForm.Get("module")).To(Equal("account"))
					Expect(req.PostForm.Get("action")).To(Equal("balance"))
					Expect(req.PostForm.Get("address")).To(Equal("0xabc"))

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"status":"1","message":"OK","result":"1000000000000000000"}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})

			balance, err := client.Accounts().Balance(context.Background(), "0xabc")
			Expect(err).ToNot(HaveOccurred())
			Expect(balance).To(Equal(big.NewInt(1000000000000000000)))
		})
	})

	Describe("Balances", func() {
		It("returns a balance per address", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					Expect(req.PostForm.Get("action")).To(Equal("balancemulti"))
					Expect(req.PostForm.Get("address")).To(Equal("0xabc,0xdef"))

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"status":"1","message":"OK","result":[
							{"account":"0xabc","balance":"100"},
							{"account":"0xdef","balance":"200"}
						]}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})

			balances, err := client.Accounts().Balances(context.Background(), []string{"0xabc", "0xdef"})
			Expect(err).ToNot(HaveOccurred())
			Expect(balances).To(HaveLen(2))
			Expect(balances["0xabc"]).To(Equal(big.NewInt(100)))
			Expect(balances["0xdef"]).To(Equal(big.NewInt(200)))
		})
	})

	Describe("Transactions", func() {
		It("applies listing defaults and normalizes the records", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					Expect(req.PostForm.Get("action")).To(Equal("txlist"))
					Expect(req.PostForm.Get("startblock")).To(Equal("0"))
					Expect(req.PostForm.Get("endblock")).To(Equal("999999999"))
					Expect(req.PostForm.Get("page")).To(Equal("1"))
					Expect(req.PostForm.Get("offset")).To(Equal("1000"))
					Expect(req.PostForm.Get("sort")).To(Equal("asc"))

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"status":"1","message":"OK","result":[
							{"blockNumber":"123","timeStamp":"1639132403","hash":"0xfeed","isError":"0","txreceipt_status":"1","input":""}
						]}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})

			records, err := client.Accounts().Transactions(context.Background(), etherscan.TransactionsRequest{
				Address: "0xabc",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0]["block_number"]).To(Equal(int64(123)))
			Expect(records[0]["timestamp"]).To(Equal(int64(1639132403)))
			Expect(records[0]["hash"]).To(Equal("0xfeed"))
			Expect(records[0]["is_error"]).To(Equal(false))
			Expect(records[0]["tx_receipt_status"]).To(Equal(true))
			Expect(records[0]).To(HaveKey("input"))
			Expect(records[0]["input"]).To(BeNil())
		})

		It("rejects an unsupported sort order before any network call", func() {
			client := newTestClient(etherscan.Config{})

			_, err := client.Accounts().Transactions(context.Background(), etherscan.TransactionsRequest{
				Address: "0xabc",
				Sort:    "sideways",
			})

			var invalidArg *etherscan.InvalidArgumentError
			Expect(err).To(BeAssignableToTypeOf(invalidArg))
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})

		It("rejects an empty address", func() {
			client := newTestClient(etherscan.Config{})

			_, err := client.Accounts().Transactions(context.Background(), etherscan.TransactionsRequest{})
			Expect(err).To(HaveOccurred())
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})
	})

	Describe("TokenTransactions", func() {
		It("fails when both the contract address and the address are unset", func() {
			client := newTestClient(etherscan.Config{})

			_, err := client.Accounts().TokenTransactions(context.Background(), etherscan.TokenTransactionsRequest{})

			var invalidArg *etherscan.InvalidArgumentError
			Expect(err).To(BeAssignableToTypeOf(invalidArg))
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})

		It("sends only the identifiers that were set", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					Expect(req.PostForm.Get("action")).To(Equal("tokentx"))
					Expect(req.PostForm.Get("contractaddress")).To(Equal("0xc0ffee"))
					Expect(req.PostForm.Has("address")).To(BeFalse())

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"status":"1","message":"OK","result":[]}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})

			_, err := client.Accounts().TokenTransactions(context.Background(), etherscan.TokenTransactionsRequest{
				ContractAddress: "0xc0ffee",
			})
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Describe("session reset", func() {
		It("leaves no parameters behind after a successful call", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					if req.PostForm.Get("action") == "balance" {
						Expect(req.PostForm).To(HaveLen(4)) // apikey, module, action, address
						Expect(req.PostForm.Has("startblock")).To(BeFalse())
						Expect(req.PostForm.Has("contractaddress")).To(BeFalse())
						Expect(req.PostForm.Has("sort")).To(BeFalse())

						return httpmock.NewStringResponse(
							http.StatusOK,
							`{"status":"1","message":"OK","result":"5"}`,
						), nil
					}

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"status":"1","message":"OK","result":[]}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})
			accounts := client.Accounts()

			_, err := accounts.TokenTransactions(context.Background(), etherscan.TokenTransactionsRequest{
				ContractAddress: "0xc0ffee",
				Address:         "0xabc",
			})
			Expect(err).ToNot(HaveOccurred())

			balance, err := accounts.Balance(context.Background(), "0xabc")
			Expect(err).ToNot(HaveOccurred())
			Expect(balance).To(Equal(big.NewInt(5)))
		})

		It("leaves no parameters behind after a failed call", func() {
			var sawClean bool
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					if req.PostForm.Get("action") == "txlist" {
						return httpmock.NewStringResponse(http.StatusOK, "not json"), nil
					}

					sawClean = !req.PostForm.Has("startblock") && !req.PostForm.Has("page")

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"status":"1","message":"OK","result":"5"}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})
			accounts := client.Accounts()

			_, err := accounts.Transactions(context.Background(), etherscan.TransactionsRequest{Address: "0xabc"})
			Expect(err).To(HaveOccurred())

			_, err = accounts.Balance(context.Background(), "0xabc")
			Expect(err).ToNot(HaveOccurred())
			Expect(sawClean).To(BeTrue())
		})
	})

	Describe("MinedBlocksByAddress", func() {
		It("rejects an unsupported block type", func() {
			client := newTestClient(etherscan.Config{})

			_, err := client.Accounts().MinedBlocksByAddress(context.Background(), "0xabc", "ommers", 0, 0)

			var invalidArg *etherscan.InvalidArgumentError
			Expect(err).To(BeAssignableToTypeOf(invalidArg))
		})
	})
})
