package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/domain"
)

type ClientCfg struct {
	ChainId domain.ChainId
	RpcUrl  string
	// OperatorKey is the hex encoded private key of the account that sends
	// transactions on behalf of the storefront.
	OperatorKey string
}

type Client interface {
	ChainId() domain.ChainId
	Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Transact(ctx bCtx.Ctx, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error)
	FilterLogs(ctx bCtx.Ctx, q ethereum.FilterQuery) ([]types.Log, error)
}

type clientImpl struct {
	chainId  domain.ChainId
	client   *ethclient.Client
	operator *ecdsa.PrivateKey
	signer   types.Signer
	from     common.Address
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
			"url":     cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	operator, err := crypto.HexToECDSA(cfg.OperatorKey)
	if err != nil {
		ctx.WithField("err", err).Error("failed to parse operator key")
		return nil, err
	}
	return &clientImpl{
		chainId:  cfg.ChainId,
		client:   client,
		operator: operator,
		signer:   types.LatestSignerForChainID(big.NewInt(int64(cfg.ChainId))),
		from:     crypto.PubkeyToAddress(operator.PublicKey),
	}, nil
}

func (c *clientImpl) ChainId() domain.ChainId {
	return c.chainId
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	nonce, err := c.client.PendingNonceAt(ctx, c.from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, err
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}
	gasLimit, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     c.from,
		To:       &addr,
		Value:    value,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.EstimateGas failed")
		return nil, err
	}
	tx := types.NewTransaction(nonce, addr, value, gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, c.signer, c.operator)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, err
	}
	if err := c.client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"txHash": signed.Hash().Hex(),
			"err":    err,
		}).Error("client.SendTransaction failed")
		return nil, err
	}
	receipt, err := c.waitMined(ctx, signed.Hash())
	if err != nil {
		ctx.WithFields(log.Fields{
			"txHash": signed.Hash().Hex(),
			"err":    err,
		}).Error("wait mined failed")
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("txHash", signed.Hash().Hex()).Error("transaction reverted")
		return nil, errors.New("transaction reverted")
	}
	return receipt, nil
}

func (c *clientImpl) waitMined(ctx bCtx.Ctx, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		receipt, err := c.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *clientImpl) FilterLogs(ctx bCtx.Ctx, q ethereum.FilterQuery) ([]types.Log, error) {
	logs, err := c.client.FilterLogs(ctx, q)
	if err != nil {
		ctx.WithField("err", err).Error("client.FilterLogs failed")
		return nil, err
	}
	return logs, nil
}
