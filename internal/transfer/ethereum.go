package transfer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/config"
)

const transferGasLimit = 21000

// ChainClient is the chain-backed asset transfer service. Deposits are
// executed by the operator account into the custody address and confirmed
// by receipt before the call returns; the investor identity is recorded by
// the ledger, not by the chain transfer itself.
type ChainClient struct {
	client     *ethclient.Client
	privateKey *ecdsa.PrivateKey
	operator   common.Address
	custody    common.Address
	chainID    *big.Int
}

// NewChainClient connects to the configured RPC endpoint and prepares the
// operator signing key.
func NewChainClient(cfg config.ChainConfig) (*ChainClient, error) {
	client, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain rpc: %w", err)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse operator private key: %w", err)
	}
	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("operator key has unexpected public key type")
	}

	return &ChainClient{
		client:     client,
		privateKey: privateKey,
		operator:   crypto.PubkeyToAddress(*publicKey),
		custody:    common.HexToAddress(cfg.Custody),
		chainID:    big.NewInt(cfg.ChainId),
	}, nil
}

// Transfer moves amount wei into custody and waits for the mined receipt.
// Any error, including a reverted receipt, means the transfer did not
// happen as far as the ledger is concerned.
func (c *ChainClient) Transfer(ctx context.Context, _ string, amount uint64) error {
	nonce, err := c.client.PendingNonceAt(ctx, c.operator)
	if err != nil {
		return fmt.Errorf("failed to fetch operator nonce: %w", err)
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, c.custody, new(big.Int).SetUint64(amount), transferGasLimit, gasPrice, nil)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.privateKey)
	if err != nil {
		return fmt.Errorf("failed to sign transfer: %w", err)
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("failed to send transfer: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, c.client, signed)
	if err != nil {
		return fmt.Errorf("failed to confirm transfer %s: %w", signed.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transfer %s reverted", signed.Hash().Hex())
	}

	return nil
}

// LatestBlock returns the current block number, used as the ledger's
// logical height in chain deployments. Returns 0 when the endpoint is
// unreachable.
func (c *ChainClient) LatestBlock() uint64 {
	header, err := c.client.HeaderByNumber(context.Background(), nil)
	if err != nil {
		return 0
	}
	return header.Number.Uint64()
}

// Close releases the underlying RPC connection.
func (c *ChainClient) Close() {
	c.client.Close()
}
