package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/utils/async"
)

// SignatureHeader carries the HMAC-SHA256 signature of the request body,
// as "sha256=<hex>".
const SignatureHeader = "X-Herald-Signature-256"

// HookHandler handles build lifecycle events delivered by the CI runner.
// Events are acknowledged immediately and processed in the background: the
// runner must never block on, or fail because of, Bitbucket I/O.
type HookHandler struct {
	secret   string
	notifyUC interfaces.NotifyUseCase
}

// NewHookHandler creates a new HookHandler
func NewHookHandler(secret string, notifyUC interfaces.NotifyUseCase) *HookHandler {
	return &HookHandler{
		secret:   secret,
		notifyUC: notifyUC,
	}
}

// HandleCheckout processes "source checked out" events.
func (h *HookHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.notifyUC.OnCheckout)
}

// HandleCompleted processes "run completed" events.
func (h *HookHandler) HandleCompleted(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, h.notifyUC.OnCompleted)
}

func (h *HookHandler) handle(w http.ResponseWriter, r *http.Request, hook func(context.Context, *model.BuildEvent) error) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if !h.verifySignature(body, r.Header.Get(SignatureHeader)) {
		logger.Warn("Invalid hook signature")
		writeError(w, goerr.New("invalid signature"), http.StatusUnauthorized)
		return
	}

	var event model.BuildEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error("Failed to parse hook payload", "error", err)
		writeError(w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.ReceivedAt = time.Now()

	logger.Info("Received build lifecycle event",
		"id", event.ID,
		"path", r.URL.Path,
		"build", event.Build.Identity(),
		"result", string(event.Build.Result),
	)

	async.Dispatch(ctx, func(ctx context.Context) error {
		return hook(ctx, &event)
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "accepted",
		"id":     event.ID,
	}); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// verifySignature verifies the hook signature
func (h *HookHandler) verifySignature(payload []byte, signature string) bool {
	if signature == "" {
		return false
	}

	signature = strings.TrimPrefix(signature, "sha256=")

	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(payload)
	expectedMAC := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expectedMAC))
}
