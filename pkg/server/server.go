package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/maruchi/tagserve/pkg/config"
	"github.com/maruchi/tagserve/pkg/prompt"
)

// Server handles the IPC for prompt classification
type Server struct {
	engine *prompt.Engine
	cfg    *config.Config
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a classification server using stdin/stdout for IPC
func NewServer(engine *prompt.Engine, cfg *config.Config) *Server {
	return NewServerIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerIO is NewServer with caller-supplied streams, used by tests.
func NewServerIO(engine *prompt.Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine: engine,
		cfg:    cfg,
		dec:    msgpack.NewDecoder(r),
		enc:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil once the input
// stream closes.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches an incoming request by op
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "classify":
		s.handleClassify(request)
	case "arrange":
		s.handleArrange(request)
	case "complete":
		s.handleComplete(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown op: %q", request.Op))
	}
}

// handleClassify labels every term of the request text and responds with
// spans in canonical order. Unmatched terms classify as unknown rather than
// erroring, so the only rejection is oversized input.
func (s *Server) handleClassify(request Request) {
	if !s.checkInputLen(request) {
		return
	}

	start := time.Now()
	spans := s.engine.Classify(request.Text)
	elapsed := time.Since(start)

	entries := make([]SpanEntry, len(spans))
	for i, span := range spans {
		entries[i] = SpanEntry{Text: span.Text, Label: string(span.Label)}
	}

	s.send(ClassifyResponse{
		ID:        request.ID,
		Spans:     entries,
		Count:     len(entries),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleArrange responds with the category-reordered prompt text.
func (s *Server) handleArrange(request Request) {
	if !s.checkInputLen(request) {
		return
	}

	start := time.Now()
	reordered := s.engine.Rearrange(request.Text)
	elapsed := time.Since(start)

	s.send(ArrangeResponse{
		ID:        request.ID,
		Text:      reordered,
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleComplete responds with ranked tag suggestions for a prefix.
func (s *Server) handleComplete(request Request) {
	if request.Prefix == "" {
		s.sendError(request.ID, "missing 'p' parameter")
		log.Debug("Prefix is empty in request")
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.cfg.Server.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	suggestions := s.engine.Complete(request.Prefix, limit)
	elapsed := time.Since(start)

	ranked := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		ranked[i] = CompletionSuggestion{
			Tag:       sg.Tag,
			PostCount: sg.PostCount,
			Rank:      uint16(i + 1),
		}
	}

	s.send(CompletionResponse{
		ID:          request.ID,
		Suggestions: ranked,
		Count:       len(ranked),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// checkInputLen rejects oversized prompt text before processing
func (s *Server) checkInputLen(request Request) bool {
	if len(request.Text) > s.cfg.Server.MaxInputLen {
		s.sendError(request.ID, fmt.Sprintf("input exceeds maximum length of %d bytes", s.cfg.Server.MaxInputLen))
		log.Debugf("Input too long in request: %d bytes", len(request.Text))
		return false
	}
	return true
}

// send encodes a response onto the output stream
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string) {
	s.send(ErrorResponse{ID: id, Error: message})
}
