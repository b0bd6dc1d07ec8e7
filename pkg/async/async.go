package async

import "github.com/rs/zerolog/log"

// Go runs fn on its own goroutine for work that has no waiter, such as the
// vote notification email. The error has nowhere to propagate, so it is
// logged and dropped.
func Go(name string, fn func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Any("panic", r).Str("task", name).Msg("background task panicked")
			}
		}()
		if err := fn(); err != nil {
			log.Error().Err(err).Str("task", name).Msg("background task failed")
		}
	}()
}
