package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/Rachana0206/dream-frame-studio/logger"
)

// Dispatcher hands Jobs to the Mailer without making the caller wait.
// Delivery failures are logged and dropped; callers never block on or branch
// on the outcome of a send.
type Dispatcher struct {
	mailer Mailer
	wg     sync.WaitGroup
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	return &Dispatcher{mailer: mailer}
}

// Dispatch attempts delivery on a detached goroutine and returns immediately.
func (d *Dispatcher) Dispatch(job Job) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.mailer.Send(job); err != nil {
			logger.Log.Warn(fmt.Sprintf("[notify] Email sending failed (non-blocking): %v", err))
		}
	}()
}

// Drain waits for in-flight sends to finish, giving up after timeout.
// Abandoned attempts are logged and die with the process.
func (d *Dispatcher) Drain(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		logger.Log.Warn("[notify] Shutdown before all notification attempts finished; abandoning the rest.")
	}
}
