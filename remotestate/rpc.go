// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package remotestate

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/inconshreveable/log15"

	"github.com/Fantom-foundation/Mimic/common"
)

// errCodeValueNotFound is the JSON-RPC error code the state service answers
// with when no value is stored for the requested key.
const errCodeValueNotFound = -32901

// RpcClient is a StateClient speaking JSON-RPC to the state service of a
// remote node.
type RpcClient struct {
	rpc *rpc.Client
	log log15.Logger
}

var _ StateClient = (*RpcClient)(nil)

// Connect establishes a JSON-RPC connection to the state service reachable
// at the given URL. HTTP, WebSocket and IPC endpoints are supported.
func Connect(ctx context.Context, url string) (*RpcClient, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to state service at %s; %w", url, err)
	}
	log := log15.New("module", "remotestate")
	log.Info("connected to state service", "url", url)
	return &RpcClient{rpc: client, log: log}, nil
}

// newRpcClient wraps an existing RPC connection, used by tests with in-process servers.
func newRpcClient(client *rpc.Client) *RpcClient {
	return &RpcClient{rpc: client, log: log15.New("module", "remotestate")}
}

func (c *RpcClient) GetBlockHash(ctx context.Context, index uint64) (common.Hash, error) {
	var result hexutil.Bytes
	if err := c.rpc.CallContext(ctx, &result, "state_getBlockHash", index); err != nil {
		c.log.Debug("block hash lookup failed", "index", index, "err", err)
		return common.Hash{}, err
	}
	var hash common.Hash
	if !hash.SetBytes(result) {
		return common.Hash{}, fmt.Errorf("received block hash of invalid length %d", len(result))
	}
	return hash, nil
}

func (c *RpcClient) GetStateRoot(ctx context.Context, index uint64) (common.Hash, error) {
	var result hexutil.Bytes
	if err := c.rpc.CallContext(ctx, &result, "state_getStateRoot", index); err != nil {
		c.log.Debug("state root lookup failed", "index", index, "err", err)
		return common.Hash{}, err
	}
	var root common.Hash
	if !root.SetBytes(result) {
		return common.Hash{}, fmt.Errorf("received state root of invalid length %d", len(result))
	}
	return root, nil
}

func (c *RpcClient) GetProvenState(ctx context.Context, root common.Hash, contract common.Address, key []byte) ([]byte, error) {
	var result hexutil.Bytes
	err := c.rpc.CallContext(ctx, &result, "state_getProvenState",
		hexutil.Bytes(root[:]), hexutil.Bytes(contract[:]), hexutil.Bytes(key))
	if err != nil {
		if rpcErr, ok := err.(rpc.Error); ok && rpcErr.ErrorCode() == errCodeValueNotFound {
			return nil, ErrValueNotFound
		}
		c.log.Debug("state lookup failed", "contract", contractLabel(contract), "err", err)
		return nil, err
	}
	return result, nil
}

// rpcStateEntry is the wire representation of a StateEntry.
type rpcStateEntry struct {
	Key   hexutil.Bytes `json:"key"`
	Value hexutil.Bytes `json:"value"`
}

func (c *RpcClient) FindStates(ctx context.Context, root common.Hash, contract common.Address, prefix []byte, from []byte, count int) ([]StateEntry, error) {
	var result []rpcStateEntry
	err := c.rpc.CallContext(ctx, &result, "state_findStates",
		hexutil.Bytes(root[:]), hexutil.Bytes(contract[:]), hexutil.Bytes(prefix), hexutil.Bytes(from), count)
	if err != nil {
		c.log.Debug("state range lookup failed", "contract", contractLabel(contract), "err", err)
		return nil, err
	}
	entries := make([]StateEntry, len(result))
	for i, entry := range result {
		entries[i] = StateEntry{Key: entry.Key, Value: entry.Value}
	}
	return entries, nil
}

func (c *RpcClient) Close() {
	c.rpc.Close()
}
