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
	"encoding/binary"
	"sync"

	"github.com/Fantom-foundation/Mimic/common"
)

// Addresses of the network's system contracts.
var (
	// LedgerContract maintains the ledger entries of the chain - current
	// block, block hashes and transaction records.
	LedgerContract = common.Address{0xfc, 0x00, 0xfa, 0xce, 0x01}

	// StakingContract maintains validator stakes and delegations.
	StakingContract = common.Address{0xfc, 0x00, 0xfa, 0xce, 0x02}

	// GovernanceContract maintains on-chain governance proposals.
	GovernanceContract = common.Address{0xfc, 0x00, 0xfa, 0xce, 0x03}
)

// systemContracts is the fixed registry the name lookup table is built from.
var systemContracts = []struct {
	name    string
	address common.Address
}{
	{"ledger", LedgerContract},
	{"staking", StakingContract},
	{"governance", GovernanceContract},
}

var (
	contractNamesMu sync.RWMutex
	contractNames   map[common.Address]string
)

// SystemContractName resolves the name of a well-known system contract. The
// lookup table is built from the registry on first use.
func SystemContractName(address common.Address) (string, bool) {
	contractNamesMu.RLock()
	names := contractNames
	contractNamesMu.RUnlock()
	if names == nil {
		contractNamesMu.Lock()
		if contractNames == nil {
			contractNames = make(map[common.Address]string, len(systemContracts))
			for _, contract := range systemContracts {
				contractNames[contract.address] = contract.name
			}
		}
		names = contractNames
		contractNamesMu.Unlock()
	}
	name, exists := names[address]
	return name, exists
}

// contractLabel renders a contract address readably, preferring the name of
// a system contract over raw hex.
func contractLabel(address common.Address) string {
	if name, exists := SystemContractName(address); exists {
		return name
	}
	return address.String()
}

// CachingClient is a read-through cache in front of a StateClient. Since the
// remote state behind a given root is immutable, every result is memoized
// for the lifetime of the client and never expires or gets invalidated.
// Identical lookups issued concurrently are collapsed into a single remote
// call. Failed calls are not retained - a later caller retries the remote
// call instead of observing a cached failure.
type CachingClient struct {
	client      StateClient
	blockHashes *common.MemoizingCache[uint64, common.Hash]
	stateRoots  *common.MemoizingCache[uint64, common.Hash]
	values      *common.MemoizingCache[common.Hash, []byte]
	entryLists  *common.MemoizingCache[common.Hash, []StateEntry]
}

// NewCachingClient creates a caching layer around the given client, taking
// over the responsibility for closing it.
func NewCachingClient(client StateClient) *CachingClient {
	return &CachingClient{
		client:      client,
		blockHashes: common.NewMemoizingCache[uint64, common.Hash](),
		stateRoots:  common.NewMemoizingCache[uint64, common.Hash](),
		values:      common.NewMemoizingCache[common.Hash, []byte](),
		entryLists:  common.NewMemoizingCache[common.Hash, []StateEntry](),
	}
}

// GetBlockHash resolves a block index to the hash of that block.
func (c *CachingClient) GetBlockHash(ctx context.Context, index uint64) (common.Hash, error) {
	return c.blockHashes.GetOrCompute(index, func() (common.Hash, error) {
		return c.client.GetBlockHash(ctx, index)
	})
}

// GetStateRoot resolves a block index to the state root valid at that block.
func (c *CachingClient) GetStateRoot(ctx context.Context, index uint64) (common.Hash, error) {
	return c.stateRoots.GetOrCompute(index, func() (common.Hash, error) {
		return c.client.GetStateRoot(ctx, index)
	})
}

// GetProvenState retrieves a proven storage value of the given contract
// under the given state root. The returned slice is a private copy of the
// cached value.
func (c *CachingClient) GetProvenState(ctx context.Context, root common.Hash, contract common.Address, key []byte) ([]byte, error) {
	cacheKey := stateValueKey(root, contract, key)
	value, err := c.values.GetOrCompute(cacheKey, func() ([]byte, error) {
		return c.client.GetProvenState(ctx, root, contract, key)
	})
	if err != nil {
		return nil, err
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// FindStates retrieves up to count storage entries of the given contract
// whose keys start with the prefix, continuing after the from key. The
// returned entries are private copies of the cached result.
func (c *CachingClient) FindStates(ctx context.Context, root common.Hash, contract common.Address, prefix []byte, from []byte, count int) ([]StateEntry, error) {
	cacheKey := findStatesKey(root, contract, prefix, from, count)
	entries, err := c.entryLists.GetOrCompute(cacheKey, func() ([]StateEntry, error) {
		return c.client.FindStates(ctx, root, contract, prefix, from, count)
	})
	if err != nil {
		return nil, err
	}
	result := make([]StateEntry, len(entries))
	for i, entry := range entries {
		key := make([]byte, len(entry.Key))
		copy(key, entry.Key)
		value := make([]byte, len(entry.Value))
		copy(value, entry.Value)
		result[i] = StateEntry{Key: key, Value: value}
	}
	return result, nil
}

// GetLedgerState reads a storage entry of the ledger system contract under
// the given state root.
func (c *CachingClient) GetLedgerState(ctx context.Context, root common.Hash, key []byte) ([]byte, error) {
	return c.GetProvenState(ctx, root, LedgerContract, key)
}

// Close drops all cached results and closes the underlying client.
func (c *CachingClient) Close() {
	c.blockHashes.Clear()
	c.stateRoots.Clear()
	c.values.Clear()
	c.entryLists.Clear()
	c.client.Close()
}

// stateValueKey derives the cache key of a single-value query. The variable
// length field is length-prefixed to keep distinct queries distinct.
func stateValueKey(root common.Hash, contract common.Address, key []byte) common.Hash {
	data := make([]byte, 0, len(root)+len(contract)+4+len(key))
	data = append(data, root[:]...)
	data = append(data, contract[:]...)
	data = appendField(data, key)
	return common.Keccak256(data)
}

// findStatesKey derives the cache key of a range query.
func findStatesKey(root common.Hash, contract common.Address, prefix []byte, from []byte, count int) common.Hash {
	data := make([]byte, 0, len(root)+len(contract)+4+len(prefix)+4+len(from)+8)
	data = append(data, root[:]...)
	data = append(data, contract[:]...)
	data = appendField(data, prefix)
	data = appendField(data, from)
	data = binary.LittleEndian.AppendUint64(data, uint64(count))
	return common.Keccak256(data)
}

func appendField(data []byte, field []byte) []byte {
	data = binary.LittleEndian.AppendUint32(data, uint32(len(field)))
	return append(data, field...)
}
