// Package cli handles cmd line input and classification output for DBG and testing various features
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/maruchi/tagserve/internal/utils"
	"github.com/maruchi/tagserve/pkg/prompt"
)

// Colors follow the original highlighter legend: green for direct tag
// matches, orange for aliases, gray for unknown terms.
var (
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	aliasStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// InputHandler processes prompt text from stdin, printing classified and
// rearranged output. Lines starting with ":c " are treated as tag
// completion queries instead.
type InputHandler struct {
	engine       *prompt.Engine
	maxInputLen  int
	suggestLimit int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *prompt.Engine, maxInputLen, suggestLimit int) *InputHandler {
	return &InputHandler{
		engine:       engine,
		maxInputLen:  maxInputLen,
		suggestLimit: suggestLimit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes the
// trimmed input to handleInput() for processing. The loop terminates when
// stdin closes or a read error occurs.
func (h *InputHandler) Start() error {
	log.Print("tagserve CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a comma-separated tag list and press Enter (':c prefix' completes, Ctrl+C exits):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, ":c "); ok {
			h.handleComplete(strings.TrimSpace(rest))
			continue
		}
		h.handleInput(line)
	}
}

// handleInput classifies a single prompt line and prints the colored spans
// followed by match counts.
func (h *InputHandler) handleInput(text string) {
	h.requestCount++

	if len(text) > h.maxInputLen {
		log.Errorf("Input too long: %d bytes (max %d)", len(text), h.maxInputLen)
		return
	}

	start := time.Now()
	spans := h.engine.Classify(text)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for %d byte input", elapsed, len(text))

	if len(spans) == 0 {
		log.Warnf("No terms found in input")
		return
	}

	var b strings.Builder
	counts := map[prompt.Label]int{}
	for _, span := range spans {
		b.WriteString(styleFor(span.Label).Render(span.Text))
		if span.Label != prompt.LabelNone {
			counts[span.Label]++
		}
	}

	log.Print(b.String())
	log.Printf("%d tags, %d aliases, %d unknown",
		counts[prompt.LabelTag], counts[prompt.LabelAlias], counts[prompt.LabelUnknown])
}

// handleComplete prints ranked tag suggestions for a prefix.
func (h *InputHandler) handleComplete(prefix string) {
	if prefix == "" {
		log.Errorf("Empty completion prefix")
		return
	}

	start := time.Now()
	suggestions := h.engine.Complete(prefix, h.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	log.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		fmtCount := utils.FormatWithCommas(s.PostCount)
		log.Printf("%2d. %-40s (posts: %10s)", i+1, tagStyle.Render(s.Tag), fmtCount)
	}
}

func styleFor(label prompt.Label) lipgloss.Style {
	switch label {
	case prompt.LabelTag:
		return tagStyle
	case prompt.LabelAlias:
		return aliasStyle
	case prompt.LabelUnknown:
		return unknownStyle
	default:
		return lipgloss.NewStyle()
	}
}
