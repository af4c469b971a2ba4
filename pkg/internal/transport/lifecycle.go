package transport

import "context"

// Wait blocks until every in-flight post has completed.
func (t *Transport) Wait() {
	t.inflight.Wait()
}

// Close stops accepting sends and waits for in-flight posts. If ctx ends first the
// remaining posts are cancelled and ctx's error is returned.
func (t *Transport) Close(ctx context.Context) error {
	t.closeLock.Lock()
	t.closed.Store(true)
	t.closeLock.Unlock()

	done := make(chan struct{})
	go func() {
		t.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.cancel()
		return nil
	case <-ctx.Done():
		t.cancel()
		<-done
		return ctx.Err()
	}
}
