package etherscan_test

import (
	"context"
	"errors"
	"math/big"
	"net/http"

	"github.com/jarcoal/httpmock"
	etherscan "github.com/neoctobers/etherscan-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProxyClient", func() {
	Describe("GasPrice", func() {
		It("decodes the hex quantity", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					Expect(req.PostForm.Get("module")).To(Equal("proxy"))
					Expect(req.PostForm.Get("action")).To(Equal("eth_gasPrice"))

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"jsonrpc":"2.0","id":73,"result":"0x12a05f200"}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})

			gasPrice, err := client.Proxy().GasPrice(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(gasPrice).To(Equal(big.NewInt(5000000000)))
		})
	})

	Describe("BlockNumber", func() {
		It("decodes the hex block number", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				httpmock.NewStringResponder(
					http.StatusOK,
					`{"jsonrpc":"2.0","id":83,"result":"0xd25285"}`,
				),
			)

			client := newTestClient(etherscan.Config{})

			blockNumber, err := client.Proxy().BlockNumber(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(blockNumber).To(Equal(uint64(0xd25285)))
		})
	})

	Describe("BlockByNumber", func() {
		It("encodes the block number as hex and normalizes the block object", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					Expect(req.PostForm.Get("action")).To(Equal("eth_getBlockByNumber"))
					Expect(req.PostForm.Get("tag")).To(Equal("0x10d4f"))
					Expect(req.PostForm.Get("boolean")).To(Equal("true"))

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"jsonrpc":"2.0","id":1,"result":{
							"number":"0x10d4f",
							"gasLimit":"0x2fefd8",
							"transactions":["0xaa","0xbb"]
						}}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})

			block, err := client.Proxy().BlockByNumber(context.Background(), 0x10d4f, true)
			Expect(err).ToNot(HaveOccurred())
			Expect(block["number"]).To(Equal("0x10d4f"))
			Expect(block["gas_limit"]).To(Equal("0x2fefd8"))
			Expect(block["transactions"]).To(Equal([]any{"0xaa", "0xbb"}))
		})
	})

	Describe("TransactionCount", func() {
		It("rejects an unsupported tag before any network call", func() {
			client := newTestClient(etherscan.Config{})

			_, err := client.Proxy().TransactionCount(context.Background(), "0xabc", "newest")

			var invalidArg *etherscan.InvalidArgumentError
			Expect(err).To(BeAssignableToTypeOf(invalidArg))
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})

		It("accepts the latest tag", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					Expect(req.PostForm.Get("action")).To(Equal("eth_getTransactionCount"))
					Expect(req.PostForm.Get("tag")).To(Equal("latest"))

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"jsonrpc":"2.0","id":1,"result":"0x44"}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})

			count, err := client.Proxy().TransactionCount(context.Background(), "0xabc", etherscan.TagLatest)
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(uint64(0x44)))
		})
	})

	Describe("StorageAt", func() {
		It("encodes the position as hex", func() {
			httpmock.RegisterResponder(
				"POST",
				apiURL,
				func(req *http.Request) (*http.Response, error) {
					Expect(req.ParseForm()).To(Succeed())
					Expect(req.PostForm.Get("action")).To(Equal("eth_getStorageAt"))
					Expect(req.PostForm.Get("position")).To(Equal("0x10"))

					return httpmock.NewStringResponse(
						http.StatusOK,
						`{"jsonrpc":"2.0","id":1,"result":"0x0"}`,
					), nil
				},
			)

			client := newTestClient(etherscan.Config{})

			value, err := client.Proxy().StorageAt(context.Background(), "0xabc", 16, etherscan.TagLatest)
			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal("0x0"))
		})
	})

	Describe("unimplemented actions", func() {
		It("fails loudly without any network call", func() {
			client := newTestClient(etherscan.Config{})

			Expect(errors.Is(client.Proxy().EstimateGas(context.Background()), etherscan.ErrNotImplemented)).To(BeTrue())
			Expect(errors.Is(client.Proxy().SendRawTransaction(context.Background()), etherscan.ErrNotImplemented)).To(BeTrue())
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})
	})
})
