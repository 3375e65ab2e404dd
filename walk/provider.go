package walk

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/nmartin84/askpath/graph"
)

// AnswerSource supplies answers for prompts. Ask blocks until an
// answer is available. Implementations may coerce raw input, but the
// returned value must be comparable against the condition operands
// used in the graph.
type AnswerSource interface {
	Ask(prompt string) (graph.Value, error)
}

// AskerFunc adapts an ordinary function to the AnswerSource interface.
type AskerFunc func(prompt string) (graph.Value, error)

func (f AskerFunc) Ask(prompt string) (graph.Value, error) { return f(prompt) }

// Coerce converts a raw answer string to its most specific value kind:
// integer, then float, falling back to the trimmed string.
func Coerce(raw string) graph.Value {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return graph.IntValue(n)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return graph.FloatValue(f)
	}
	return graph.StringValue(trimmed)
}

// CLIAsker reads answers from a terminal. It prints the prompt on Out
// and blocks on a line read from In, coercing numeric input.
type CLIAsker struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

// NewCLIAsker creates a CLIAsker that reads from in and writes to out.
func NewCLIAsker(in io.Reader, out io.Writer) *CLIAsker {
	return &CLIAsker{In: in, Out: out}
}

// Ask presents the prompt and returns the coerced answer. Returns
// io.EOF when the input is exhausted.
func (a *CLIAsker) Ask(prompt string) (graph.Value, error) {
	fmt.Fprintf(a.Out, "%s: ", prompt)

	if a.scanner == nil {
		a.scanner = bufio.NewScanner(a.In)
	}
	if a.scanner.Scan() {
		return Coerce(a.scanner.Text()), nil
	}
	if err := a.scanner.Err(); err != nil {
		return graph.Value{}, err
	}
	return graph.Value{}, io.EOF
}

// QueueAsker returns answers from a pre-filled queue. Used for
// deterministic testing and replay. Asking an empty queue is an error.
type QueueAsker struct {
	mu      sync.Mutex
	answers []graph.Value
}

// NewQueueAsker creates a QueueAsker with the given answers.
func NewQueueAsker(answers ...graph.Value) *QueueAsker {
	return &QueueAsker{answers: answers}
}

// Enqueue adds an answer to the queue.
func (q *QueueAsker) Enqueue(answer graph.Value) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.answers = append(q.answers, answer)
}

// Ask dequeues and returns the next answer.
func (q *QueueAsker) Ask(prompt string) (graph.Value, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.answers) == 0 {
		return graph.Value{}, fmt.Errorf("answer queue exhausted at prompt %q", prompt)
	}
	answer := q.answers[0]
	q.answers = q.answers[1:]
	return answer, nil
}

// Remaining returns the number of answers left in the queue.
func (q *QueueAsker) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.answers)
}

// Exchange is a recorded prompt-answer pair.
type Exchange struct {
	Prompt string
	Answer graph.Value
}

// RecordingAsker wraps another source and records every exchange.
// Used for replay, debugging, and audit trails.
type RecordingAsker struct {
	Inner AnswerSource

	mu        sync.Mutex
	exchanges []Exchange
}

// NewRecordingAsker creates a RecordingAsker wrapping the given source.
func NewRecordingAsker(inner AnswerSource) *RecordingAsker {
	return &RecordingAsker{Inner: inner}
}

// Ask delegates to the inner source and records the exchange.
func (r *RecordingAsker) Ask(prompt string) (graph.Value, error) {
	answer, err := r.Inner.Ask(prompt)
	if err != nil {
		return graph.Value{}, err
	}

	r.mu.Lock()
	r.exchanges = append(r.exchanges, Exchange{Prompt: prompt, Answer: answer})
	r.mu.Unlock()

	return answer, nil
}

// Exchanges returns a copy of all recorded prompt-answer pairs.
func (r *RecordingAsker) Exchanges() []Exchange {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Exchange, len(r.exchanges))
	copy(out, r.exchanges)
	return out
}

// Clear removes all recordings.
func (r *RecordingAsker) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exchanges = r.exchanges[:0]
}
