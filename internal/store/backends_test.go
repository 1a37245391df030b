package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	mu    sync.Mutex
	table string
	items map[string]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.table = *in.TableName
	k := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[k]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.table = *in.TableName
	k := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamo_RoundTrip(t *testing.T) {
	fake := newFakeDynamo()
	s := New(NewDynamo(fake, "")).Scoped("sid")

	assert.Equal(t, "none", Read(s, KeyOrder, "none"))

	require.NoError(t, s.TryWrite(KeyOrder, profile{Name: "PD1"}))
	assert.Equal(t, profile{Name: "PD1"}, Read(s, KeyOrder, profile{}))
	assert.Equal(t, DefaultDynamoTable, fake.table)

	item := fake.items["pd:session:sid:pd_order"]
	require.NotNil(t, item)
	assert.Contains(t, item, "updated_at")
}

func TestSQLite_RoundTripAndOverwrite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := New(db)
	assert.ErrorIs(t, Lookup[string](s, KeyUser).Err, ErrNotFound)

	require.NoError(t, s.TryWrite(KeyUser, "first"))
	require.NoError(t, s.TryWrite(KeyUser, "second"))
	assert.Equal(t, "second", Read(s, KeyUser, ""))
}

func TestRedis_UnreachableFallsBack(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	s := New(NewRedis(rdb, 0), WithTimeout(200*time.Millisecond))
	assert.Equal(t, "fb", Read(s, KeyCart, "fb"))
	assert.Error(t, s.TryWrite(KeyCart, "v"))
}
