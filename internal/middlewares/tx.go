package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/course-platform/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The response is
// buffered so that it is only sent once the outcome of the transaction is known:
// status codes below 400 commit, everything else rolls back. When the
// transaction cannot be begun or committed the client gets a 500 carrying
// failMsg. Hooks registered with AfterCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB, failMsg string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, failMsg)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					if err := tx.Rollback(); err != nil {
						logger.Log.Errorw("failed to rollback transaction", "error", err)
					}
					panic(rec)
				}
			}()

			state := &txState{tx: tx}
			buf := &bufferedWriter{header: w.Header(), status: http.StatusOK}
			next.ServeHTTP(buf, r.WithContext(context.WithValue(r.Context(), txKey, state)))

			if buf.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err, "dropped_hooks", len(state.afterCommit))
				writeError(w, http.StatusInternalServerError, failMsg)
				return
			}
			buf.flush(w)
			if len(state.afterCommit) == 0 {
				return
			}

			// send the response before running hooks that may talk to slow peers
			if err := http.NewResponseController(w).Flush(); err != nil {
				logger.Log.Debugw("response flush unsupported", "error", err)
			}
			for _, fn := range state.afterCommit {
				fn()
			}
		})
	}
}

// bufferedWriter holds the response until the transaction finishes.
type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) { b.status = code }

func (b *bufferedWriter) Write(p []byte) (int, error) { return b.body.Write(p) }

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	w.WriteHeader(b.status)
	if b.body.Len() > 0 {
		w.Write(b.body.Bytes())
	}
}

// txState is the per-request transaction and the work waiting for its commit.
// A request is served by a single goroutine, so no locking is needed.
type txState struct {
	tx          *sqlx.Tx
	afterCommit []func()
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit schedules fn to run once the request transaction commits. It is
// dropped on rollback. Without a transaction in ctx, fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn()
		return
	}
	state.afterCommit = append(state.afterCommit, fn)
}
