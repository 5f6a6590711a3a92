package http

import (
	"encoding/json"
	"log"
	"net/http"

	"ecoquest-quiz-service/internal/app"
	"ecoquest-quiz-service/internal/certificate"
	"ecoquest-quiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type namePayload struct {
	Name string `json:"name"`
}

type difficultyPayload struct {
	Difficulty string `json:"difficulty"`
}

type optionPayload struct {
	Option string `json:"option"`
}

type taskPayload struct {
	Description string `json:"description"`
}

type certificatePayload struct {
	Document string `json:"document"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// outbox serializes writes to the peer. Sends give up once the writer
// goroutine has exited, so a dead connection never blocks the reader.
type outbox struct {
	ch   chan outboundMessage[any]
	done <-chan struct{}
}

func (o *outbox) send(msg outboundMessage[any]) bool {
	select {
	case o.ch <- msg:
		return true
	case <-o.done:
		return false
	}
}

// ServeWS upgrades HTTP requests to websockets and wires them into the game
// operations. Each inbound message is one serialized user action; the reply
// is the new snapshot plus any fire-and-forget effects.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		http.Error(w, "missing playerId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	joined, err := h.service.Join(r.Context(), playerID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	updates, cancel, err := h.service.Subscribe(r.Context(), playerID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()
	defer h.service.Leave(r.Context(), playerID)

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})
	out := &outbox{ch: send, done: writerDone}

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				if !out.send(outboundMessage[any]{Type: "snapshot", Payload: update}) {
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	out.send(outboundMessage[any]{Type: "joined", Payload: joined})

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		h.dispatch(r, playerID, inbound, out)
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func (h *WSHandler) dispatch(r *http.Request, playerID string, inbound inboundMessage, out *outbox) {
	ctx := r.Context()
	var (
		effects []domain.Effect
		err     error
	)

	switch inbound.Type {
	case "submitName":
		var payload namePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			out.send(errorMessage("invalid submitName payload"))
			return
		}
		_, effects, err = h.service.SubmitName(ctx, playerID, payload.Name)
	case "chooseDifficulty":
		var payload difficultyPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			out.send(errorMessage("invalid chooseDifficulty payload"))
			return
		}
		_, effects, err = h.service.ChooseDifficulty(ctx, playerID, payload.Difficulty)
	case "selectOption":
		var payload optionPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			out.send(errorMessage("invalid selectOption payload"))
			return
		}
		_, effects, err = h.service.SelectOption(ctx, playerID, payload.Option)
	case "confirm":
		_, effects, err = h.service.ConfirmSelection(ctx, playerID)
	case "advance":
		_, effects, err = h.service.Advance(ctx, playerID)
	case "playAgain":
		_, effects, err = h.service.PlayAgain(ctx, playerID)
	case "reset":
		_, effects, err = h.service.ResetGame(ctx, playerID)
	case "logTask":
		var payload taskPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			out.send(errorMessage("invalid logTask payload"))
			return
		}
		_, effects, err = h.service.LogTask(ctx, playerID, payload.Description)
	case "certificate":
		cert, certErr := h.service.Certificate(ctx, playerID)
		if certErr != nil {
			out.send(errorMessage(certErr.Error()))
			return
		}
		doc, renderErr := certificate.Render(cert)
		if renderErr != nil {
			log.Printf("certificate render failed: %v", renderErr)
			out.send(errorMessage("certificate rendering failed"))
			return
		}
		out.send(outboundMessage[any]{Type: "certificate", Payload: certificatePayload{Document: string(doc)}})
		return
	default:
		out.send(errorMessage("unsupported message type"))
		return
	}

	if err != nil {
		out.send(errorMessage(err.Error()))
		return
	}
	for _, effect := range effects {
		out.send(outboundMessage[any]{Type: "effect", Payload: effect})
	}
}

func errorMessage(msg string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: msg}}
}
