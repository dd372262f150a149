package mockclient

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// holdPings parks every Ping call until the returned release func
// runs, restoring the open default afterwards.
func holdPings(t *testing.T) (release func()) {
	t.Helper()
	old := pingGate
	g := newGate(false)
	pingGate = g
	t.Cleanup(func() { g.open(); pingGate = old })
	return g.open
}

func TestFuturePing(t *testing.T) {
	f := FuturePing("hello")
	assert.True(t, f.GetBool(), "ping with a message must succeed")
}

func TestFuturePing_BlocksUntilBackgroundCompletes(t *testing.T) {
	release := holdPings(t)

	f := FuturePing("hello")

	// The handle comes back immediately, unresolved: the worker is
	// parked inside the real Ping call.
	assert.False(t, f.Resolved())
	assert.False(t, f.WaitFor(50*time.Millisecond), "future resolved while the wrapped call was still blocked")

	release()

	assert.True(t, f.GetBool(), "GetBool must block until resolution, then yield the stored result")
	assert.True(t, f.Resolved())
}

func TestFuturePing_EmptyMessage(t *testing.T) {
	f := FuturePing("")
	assert.False(t, f.GetBool())
}

func TestFutureGet_IdempotentRead(t *testing.T) {
	f := FuturePing("hello")

	first := f.GetBool()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, f.GetBool(), "reads of a resolved future must all return the stored value")
	}
}

func TestFuture_RaceDispatchAndWait(t *testing.T) {
	// No held gates: dispatch and wait race freely. Whatever the
	// interleaving, the caller must read the worker's value, never a
	// default.
	for i := 0; i < 50; i++ {
		f := FuturePing("hello")
		require.True(t, f.GetBool(), "iteration %d read a wrong or default value", i)
	}
}

func TestFuture_WrongKindReadPanics(t *testing.T) {
	f := FuturePing("hello")
	f.GetBool()

	assert.Panics(t, func() { f.GetUint32() }, "reading a bool result as uint32 must panic")
}

func TestFutureClientCommandSimple(t *testing.T) {
	client := NewBlockedClient()
	client.SetReply(NewDocument(map[string]any{"version": "8.0"}))

	reply := NewDocument(nil)
	cerr := &ClientError{}
	f := FutureClientCommandSimple(client, "admin", NewDocument(map[string]any{"ping": 1}), &ReadPrefs{Mode: "primary"}, reply, cerr)

	assert.False(t, f.Resolved(), "command must stay in flight until the client is unblocked")
	client.Unblock()

	assert.True(t, f.GetBool())
	assert.Equal(t, "8.0", reply.Fields["version"], "reply must carry the configured response")
	assert.Equal(t, uint32(0), cerr.Code, "error parameter must stay untouched on success")
}

func TestFutureClientCommandSimple_ErrorIsData(t *testing.T) {
	client := NewClient()
	client.FailWith(11, "command failed")

	cerr := &ClientError{}
	f := FutureClientCommandSimple(client, "admin", nil, nil, NewDocument(nil), cerr)

	// The wrapped call failing is not a futures-layer failure: the
	// future resolves normally and the error arrives as parameter
	// data.
	assert.False(t, f.GetBool())
	assert.Equal(t, uint32(11), cerr.Code)
	assert.Equal(t, "command failed", cerr.Message)
}

func TestFutureCursorNext(t *testing.T) {
	first := NewDocument(map[string]any{"_id": 1})
	second := NewDocument(map[string]any{"_id": 2})
	cursor := NewCursor(first, second)

	var doc *Document
	for i, want := range []*Document{first, second} {
		f := FutureCursorNext(cursor, &doc)
		require.True(t, f.GetBool(), "document %d", i)
		assert.Same(t, want, doc)
	}

	f := FutureCursorNext(cursor, &doc)
	assert.False(t, f.GetBool(), "exhausted cursor must report false")
	assert.Nil(t, doc)
}

func TestFutureCursorNext_BlockedCursor(t *testing.T) {
	cursor := NewBlockedCursor(NewDocument(map[string]any{"_id": 1}))

	var doc *Document
	f := FutureCursorNext(cursor, &doc)
	assert.False(t, f.WaitFor(50*time.Millisecond))

	cursor.Unblock()
	assert.True(t, f.GetBool())
	require.NotNil(t, doc)
}

func TestFutureClientGetDatabaseNames(t *testing.T) {
	client := NewClient()
	client.SetDatabases("admin", "config", "test")

	f := FutureClientGetDatabaseNames(client, &ClientError{})
	got := f.GetStringArray()

	if diff := cmp.Diff([]string{"admin", "config", "test"}, got); diff != "" {
		t.Errorf("database names mismatch (-want +got):\n%s", diff)
	}
}

func TestFutureBulkOperationExecute(t *testing.T) {
	client := NewClient()
	bulk := NewBulkOperation(client, 7)
	reply := NewDocument(nil)

	f := FutureBulkOperationExecute(bulk, reply, &ClientError{})

	assert.Equal(t, uint32(7), f.GetUint32())
	assert.Equal(t, uint32(7), reply.Fields["nInserted"])
}

func TestFuture_ParamSlots(t *testing.T) {
	f := FuturePing("hello")
	f.GetBool()

	// After resolution the caller may inspect the packaged arguments.
	assert.Equal(t, "hello", f.Param(0).GetConstCharPtr())
}

func TestFuture_ReleaseFreesOwnedSlots(t *testing.T) {
	client := NewClient()
	reply := NewDocument(nil)
	cerr := &ClientError{}

	f := FutureClientCommandSimple(client, "admin", nil, nil, reply, cerr)
	f.GetBool()

	f.Release()
	assert.True(t, reply.Released, "owned reply document must be released with the future")
	assert.True(t, cerr.Released, "owned error must be released with the future")
}
