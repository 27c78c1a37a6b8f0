package xrt

import (
	"bytes"
	"context"
)

// Watcher delivers settings documents. Watch emits the current document
// first, if there is one, then each changed document. The channel closes
// when ctx is canceled or the source goes away.
type Watcher interface {
	Watch(ctx context.Context) (<-chan []byte, error)
}

// emitter sends documents on out, dropping any document identical to the
// previous one sent. Editors and file systems often report one save as
// several events.
type emitter struct {
	out  chan []byte
	last []byte
	sent bool
}

func newEmitter() *emitter {
	return &emitter{out: make(chan []byte)}
}

// send delivers doc unless it repeats the last document. It reports false
// once ctx is canceled.
func (e *emitter) send(ctx context.Context, doc []byte) bool {
	if e.sent && bytes.Equal(doc, e.last) {
		return true
	}
	select {
	case e.out <- doc:
		e.last = doc
		e.sent = true
		return true
	case <-ctx.Done():
		return false
	}
}

// ChannelWatcher delivers documents pushed on a channel, for tests and for
// hosts that load settings themselves.
type ChannelWatcher struct {
	source <-chan []byte
	direct bool
}

// NewChannelWatcher forwards documents from source on a goroutine,
// dropping consecutive duplicates.
func NewChannelWatcher(source <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{source: source}
}

// NewSyncChannelWatcher hands source back unchanged. Pair it with
// SettingsStore.SyncMode so tests decide when each document is processed.
func NewSyncChannelWatcher(source <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{source: source, direct: true}
}

// Watch implements Watcher.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if w.direct {
		return w.source, nil
	}

	e := newEmitter()
	go func() {
		defer close(e.out)
		for {
			select {
			case <-ctx.Done():
				return
			case doc, ok := <-w.source:
				if !ok || !e.send(ctx, doc) {
					return
				}
			}
		}
	}()
	return e.out, nil
}
