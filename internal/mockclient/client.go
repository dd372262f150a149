// Package mockclient is a hand-written stand-in for a synchronous
// driver client, paired with the committed output of the futures
// generator (futures_gen.go, from futuregen.yaml). Every call here
// blocks the way a real driver call would - on a gate the test
// controls - so the generated future/background pairs can be exercised
// with real concurrency: dispatch, observe the unresolved future, let
// the call finish, then collect the result.
package mockclient

import "sync"

// Document is an opaque reply or command payload.
type Document struct {
	Fields map[string]any

	// Released is set by releaseDocument when an owning Value lets
	// the document go.
	Released bool
}

// NewDocument returns a document with the given fields.
func NewDocument(fields map[string]any) *Document {
	return &Document{Fields: fields}
}

// ClientError is the parameter-based error convention of the wrapped
// API: the caller passes one in, the callee fills it on failure. It is
// ordinary data to the futures layer, not a distinct failure channel.
type ClientError struct {
	Code     uint32
	Message  string
	Released bool
}

func (e *ClientError) Error() string {
	return e.Message
}

// ReadPrefs selects which member of a deployment a command targets.
// Opaque to the futures layer.
type ReadPrefs struct {
	Mode string
}

// releaseDocument is the release hook for the owning document_ptr
// kind. Releasing the same document twice means the container's
// at-most-once discipline broke, so it panics.
func releaseDocument(d *Document) {
	if d.Released {
		panic("mockclient: document released twice")
	}
	d.Released = true
}

// releaseClientError is the release hook for the error_ptr kind.
func releaseClientError(e *ClientError) {
	if e.Released {
		panic("mockclient: client error released twice")
	}
	e.Released = true
}

// gate blocks callers until the test opens it. A gate created open
// never blocks.
type gate struct {
	once sync.Once
	ch   chan struct{}
}

func newGate(open bool) *gate {
	g := &gate{ch: make(chan struct{})}
	if open {
		g.open()
	}
	return g
}

func (g *gate) open() {
	g.once.Do(func() { close(g.ch) })
}

func (g *gate) wait() {
	<-g.ch
}

// Client simulates a connected driver client. Calls through a blocked
// client park until Unblock, which is how tests hold a future in its
// dispatched-but-unresolved state.
type Client struct {
	gate *gate

	mu        sync.Mutex
	databases []string
	reply     *Document
	failWith  *ClientError
}

// NewClient returns a client whose calls complete immediately.
func NewClient() *Client {
	return &Client{gate: newGate(true)}
}

// NewBlockedClient returns a client whose calls park until Unblock.
func NewBlockedClient() *Client {
	return &Client{gate: newGate(false)}
}

// Unblock releases every parked and future call. Idempotent.
func (c *Client) Unblock() {
	c.gate.open()
}

// SetDatabases configures what ClientGetDatabaseNames reports.
func (c *Client) SetDatabases(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.databases = names
}

// SetReply configures the document ClientCommandSimple copies into the
// caller's reply parameter.
func (c *Client) SetReply(reply *Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reply = reply
}

// FailWith makes subsequent calls report the given error through
// their error parameter instead of succeeding.
func (c *Client) FailWith(code uint32, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failWith = &ClientError{Code: code, Message: message}
}

// fail copies the configured failure into the caller's error
// parameter, reporting whether a failure was configured.
func (c *Client) fail(err *ClientError) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWith == nil {
		return false
	}
	if err != nil {
		err.Code = c.failWith.Code
		err.Message = c.failWith.Message
	}
	return true
}

// pingGate holds Ping calls; tests swap it for a closed one to make
// pings instant, or leave a fresh gate in place to park them.
var pingGate = newGate(true)

// Ping round-trips a message. It reports success for any non-empty
// message once the gate opens.
func Ping(msg string) bool {
	pingGate.wait()
	return msg != ""
}

// ClientCommandSimple runs one command and blocks until the client is
// unblocked. On success the configured reply is copied into the
// caller's reply document; on failure the caller's error parameter is
// filled instead. The bool return is the success flag, exactly like
// the API it stands in for.
func ClientCommandSimple(client *Client, dbName string, command *Document, readPrefs *ReadPrefs, reply *Document, err *ClientError) bool {
	client.gate.wait()

	if client.fail(err) {
		return false
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	if reply != nil {
		reply.Fields = map[string]any{"ok": 1}
		if client.reply != nil {
			for k, v := range client.reply.Fields {
				reply.Fields[k] = v
			}
		}
	}
	_ = dbName
	_ = command
	_ = readPrefs
	return true
}

// Cursor iterates a fixed set of documents. Each Next parks until the
// cursor's gate opens.
type Cursor struct {
	gate *gate

	mu   sync.Mutex
	docs []*Document
	pos  int
}

// NewCursor returns a cursor over docs whose calls complete
// immediately.
func NewCursor(docs ...*Document) *Cursor {
	return &Cursor{gate: newGate(true), docs: docs}
}

// NewBlockedCursor returns a cursor whose calls park until Unblock.
func NewBlockedCursor(docs ...*Document) *Cursor {
	return &Cursor{gate: newGate(false), docs: docs}
}

// Unblock releases every parked and future call. Idempotent.
func (c *Cursor) Unblock() {
	c.gate.open()
}

// CursorNext advances the cursor, storing the next document through
// doc. It reports false with *doc set to nil once the cursor is
// exhausted.
func CursorNext(cursor *Cursor, doc **Document) bool {
	cursor.gate.wait()

	cursor.mu.Lock()
	defer cursor.mu.Unlock()
	if cursor.pos >= len(cursor.docs) {
		*doc = nil
		return false
	}
	*doc = cursor.docs[cursor.pos]
	cursor.pos++
	return true
}

// ClientGetDatabaseNames lists database names, or fills the caller's
// error parameter and returns nil.
func ClientGetDatabaseNames(client *Client, err *ClientError) []string {
	client.gate.wait()

	if client.fail(err) {
		return nil
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	names := make([]string, len(client.databases))
	copy(names, client.databases)
	return names
}

// BulkOperation accumulates queued writes.
type BulkOperation struct {
	client *Client
	queued uint32
}

// NewBulkOperation returns a bulk operation executing against client.
func NewBulkOperation(client *Client, queued uint32) *BulkOperation {
	return &BulkOperation{client: client, queued: queued}
}

// BulkOperationExecute flushes the bulk operation, reporting how many
// writes were applied. Zero with a filled error parameter means the
// execute failed.
func BulkOperationExecute(bulk *BulkOperation, reply *Document, err *ClientError) uint32 {
	bulk.client.gate.wait()

	if bulk.client.fail(err) {
		return 0
	}
	if reply != nil {
		reply.Fields = map[string]any{"nInserted": bulk.queued}
	}
	return bulk.queued
}
