package server

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kelsivan/trieserve/internal/logger"
	"github.com/kelsivan/trieserve/pkg/config"
	"github.com/kelsivan/trieserve/pkg/suggest"
)

// Server processes msgpack requests against a completion engine.
// Requests run to completion one at a time; the engine needs no lock.
type Server struct {
	completer    suggest.ICompleter
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	maxLimit     int
	maxPrefix    int
	defaultLimit int
	log          *log.Logger
}

// NewServer wires a server over stdin/stdout with limits from cfg.
func NewServer(completer suggest.ICompleter, cfg *config.Config) *Server {
	return newServer(completer, os.Stdin, os.Stdout, cfg)
}

func newServer(completer suggest.ICompleter, in io.Reader, out io.Writer, cfg *config.Config) *Server {
	defaultLimit := cfg.Server.DefaultLimit
	if defaultLimit < 1 {
		defaultLimit = 10
	}
	return &Server{
		completer:    completer,
		dec:          msgpack.NewDecoder(in),
		enc:          msgpack.NewEncoder(out),
		maxLimit:     cfg.Server.MaxLimit,
		maxPrefix:    cfg.Server.MaxPrefix,
		defaultLimit: defaultLimit,
		log:          logger.New("ipc"),
	}
}

// Start signals readiness and serves requests until the input stream
// ends. Malformed requests produce error responses, not loop exits.
func (s *Server) Start() error {
	s.log.Debug("IPC server starting")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("client disconnected")
				return nil
			}
			s.log.Errorf("decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Op {
	case OpComplete:
		s.handleComplete(req)
	case OpInsert:
		s.completer.AddWord(req.Word, req.Weight)
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	case OpRemove:
		s.send(BoolResponse{ID: req.ID, Found: s.completer.Remove(req.Word)})
	case OpContains:
		s.send(BoolResponse{ID: req.ID, Found: s.completer.Contains(req.Word)})
	case OpStats:
		words, height, nodes := s.completer.Stats()
		s.send(StatsResponse{ID: req.ID, Words: words, Height: height, Nodes: nodes})
	default:
		s.sendError(req.ID, "unknown op: "+req.Op, 400)
	}
}

func (s *Server) handleComplete(req Request) {
	if req.Prefix == "" {
		s.sendError(req.ID, "missing prefix", 400)
		return
	}
	if s.maxPrefix > 0 && len(req.Prefix) > s.maxPrefix {
		s.sendError(req.ID, "prefix too long", 400)
		return
	}
	limit := req.Limit
	if limit < 1 {
		limit = s.defaultLimit
	}
	if s.maxLimit > 0 && limit > s.maxLimit {
		limit = s.maxLimit
	}

	start := time.Now()
	suggestions := s.completer.Complete(req.Prefix, limit)
	elapsed := time.Since(start)

	resp := CompletionResponse{
		ID:          req.ID,
		Suggestions: make([]ResponseSuggestion, len(suggestions)),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
	for i, sg := range suggestions {
		resp.Suggestions[i] = ResponseSuggestion{Word: sg.Word, Weight: sg.Weight}
	}
	s.send(resp)
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.log.Debugf("request %s rejected: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
