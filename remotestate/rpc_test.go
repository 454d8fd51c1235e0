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
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/Fantom-foundation/Mimic/common"
)

// notFoundError is the error shape the state service answers missing values
// with, carrying the dedicated JSON-RPC error code.
type notFoundError struct{}

func (notFoundError) Error() string  { return "value not found" }
func (notFoundError) ErrorCode() int { return errCodeValueNotFound }

// stateService is an in-process fake of the remote node's state namespace.
type stateService struct {
	blockHashes map[uint64]common.Hash
	stateRoots  map[uint64]common.Hash
	values      map[string][]byte
	entries     []StateEntry
	brokenHash  bool
}

func (s *stateService) GetBlockHash(index uint64) (hexutil.Bytes, error) {
	if s.brokenHash {
		return hexutil.Bytes{0x01, 0x02}, nil
	}
	hash, exists := s.blockHashes[index]
	if !exists {
		return nil, fmt.Errorf("unknown block %d", index)
	}
	return hash[:], nil
}

func (s *stateService) GetStateRoot(index uint64) (hexutil.Bytes, error) {
	root, exists := s.stateRoots[index]
	if !exists {
		return nil, fmt.Errorf("unknown block %d", index)
	}
	return root[:], nil
}

func (s *stateService) GetProvenState(root, contract, key hexutil.Bytes) (hexutil.Bytes, error) {
	value, exists := s.values[string(root)+"/"+string(contract)+"/"+string(key)]
	if !exists {
		return nil, notFoundError{}
	}
	return value, nil
}

func (s *stateService) FindStates(root, contract, prefix, from hexutil.Bytes, count int) ([]rpcStateEntry, error) {
	result := []rpcStateEntry{}
	for _, entry := range s.entries {
		if !bytes.HasPrefix(entry.Key, prefix) {
			continue
		}
		if from != nil && bytes.Compare(entry.Key, from) <= 0 {
			continue
		}
		if len(result) == count {
			break
		}
		result = append(result, rpcStateEntry{Key: entry.Key, Value: entry.Value})
	}
	return result, nil
}

func newTestClient(t *testing.T, service *stateService) *RpcClient {
	server := rpc.NewServer()
	if err := server.RegisterName("state", service); err != nil {
		t.Fatalf("failed to register test service: %v", err)
	}
	t.Cleanup(server.Stop)
	client := newRpcClient(rpc.DialInProc(server))
	t.Cleanup(client.Close)
	return client
}

func TestRpcClient_BlockHashAndStateRootAreDecoded(t *testing.T) {
	blockHash := common.Hash{0xaa, 0xbb}
	stateRoot := common.Hash{0xcc, 0xdd}
	client := newTestClient(t, &stateService{
		blockHashes: map[uint64]common.Hash{7: blockHash},
		stateRoots:  map[uint64]common.Hash{7: stateRoot},
	})

	hash, err := client.GetBlockHash(context.Background(), 7)
	if err != nil {
		t.Fatalf("block hash lookup failed: %v", err)
	}
	if hash != blockHash {
		t.Errorf("unexpected block hash: %v", hash)
	}
	root, err := client.GetStateRoot(context.Background(), 7)
	if err != nil {
		t.Fatalf("state root lookup failed: %v", err)
	}
	if root != stateRoot {
		t.Errorf("unexpected state root: %v", root)
	}
}

func TestRpcClient_ServerSideFailuresArePropagated(t *testing.T) {
	client := newTestClient(t, &stateService{})
	if _, err := client.GetBlockHash(context.Background(), 404); err == nil || !strings.Contains(err.Error(), "unknown block") {
		t.Errorf("server failure not propagated: %v", err)
	}
	if _, err := client.GetStateRoot(context.Background(), 404); err == nil || !strings.Contains(err.Error(), "unknown block") {
		t.Errorf("server failure not propagated: %v", err)
	}
}

func TestRpcClient_HashOfInvalidLengthIsRejected(t *testing.T) {
	client := newTestClient(t, &stateService{brokenHash: true})
	if _, err := client.GetBlockHash(context.Background(), 1); err == nil || !strings.Contains(err.Error(), "invalid length") {
		t.Errorf("truncated hash not rejected: %v", err)
	}
}

func TestRpcClient_ProvenStateRoundTrip(t *testing.T) {
	root := common.Hash{0x11}
	service := &stateService{values: map[string][]byte{
		string(root[:]) + "/" + string(LedgerContract[:]) + "/key": []byte("value"),
	}}
	client := newTestClient(t, service)

	value, err := client.GetProvenState(context.Background(), root, LedgerContract, []byte("key"))
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !bytes.Equal(value, []byte("value")) {
		t.Errorf("unexpected value: %q", value)
	}
}

func TestRpcClient_NotFoundCodeMapsToErrValueNotFound(t *testing.T) {
	client := newTestClient(t, &stateService{})
	_, err := client.GetProvenState(context.Background(), common.Hash{0x11}, LedgerContract, []byte("missing"))
	if !errors.Is(err, ErrValueNotFound) {
		t.Errorf("missing value not mapped to ErrValueNotFound: %v", err)
	}
}

func TestRpcClient_FindStatesRoundTrip(t *testing.T) {
	service := &stateService{entries: []StateEntry{
		{Key: []byte("aa"), Value: []byte("1")},
		{Key: []byte("ab"), Value: []byte("2")},
		{Key: []byte("ba"), Value: []byte("3")},
	}}
	client := newTestClient(t, service)

	entries, err := client.FindStates(context.Background(), common.Hash{0x11}, LedgerContract, []byte("a"), nil, 10)
	if err != nil {
		t.Fatalf("range lookup failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("unexpected number of entries: %d", len(entries))
	}
	if !bytes.Equal(entries[0].Key, []byte("aa")) || !bytes.Equal(entries[1].Value, []byte("2")) {
		t.Errorf("unexpected entries: %v", entries)
	}

	entries, err = client.FindStates(context.Background(), common.Hash{0x11}, LedgerContract, []byte("a"), []byte("aa"), 1)
	if err != nil {
		t.Fatalf("range lookup failed: %v", err)
	}
	if len(entries) != 1 || !bytes.Equal(entries[0].Key, []byte("ab")) {
		t.Errorf("unexpected continuation result: %v", entries)
	}
}

func TestRpcClient_CancelledContextAbortsTheCall(t *testing.T) {
	client := newTestClient(t, &stateService{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.GetBlockHash(ctx, 1); err == nil {
		t.Errorf("call with cancelled context did not fail")
	}
}
