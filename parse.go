package pagesift

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseProvider identifies an LLM parse backend.
type ParseProvider string

// Known parse backends.
const (
	ParseGemini ParseProvider = "gemini"
	ParseGroq   ParseProvider = "groq"
	ParseOpenAI ParseProvider = "openai"
)

// ParseProviders lists all known parse backends.
func ParseProviders() []ParseProvider {
	return []ParseProvider{ParseGemini, ParseGroq, ParseOpenAI}
}

// ParseConfig carries caller-resolved settings for a parse backend.
// Never persisted by the core.
type ParseConfig struct {
	// APIKey authenticates against the backend.
	APIKey string

	// Model overrides the backend's default model.
	Model string

	// Temperature is the sampling temperature. Zero keeps the backend
	// default.
	Temperature float32

	// MaxTokens bounds the response size. Zero keeps the backend
	// default bound.
	MaxTokens int
}

// Validate returns an error if the config is unusable.
func (c ParseConfig) Validate() error {
	if c.APIKey == "" {
		return Errorf(EAUTH, "API key required")
	}
	return nil
}

// Field is one named value in a record.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is a flat field-to-value mapping extracted from a chunk.
// Field order is first-seen order, preserved through JSON decoding so
// that materialized column order is deterministic.
type Record struct {
	Fields []Field `json:"fields"`
}

// Set assigns a field value, replacing an existing field of the same
// name or appending a new one.
func (r *Record) Set(name, value string) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// Get returns the value of the named field and whether it exists.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.Fields)
}

// ParseResult is the outcome of parsing one chunk. It is created once
// and never mutated. A failed parse carries Success == false and the
// typed error in Err; it never aborts sibling chunks.
type ParseResult struct {
	ChunkIndex int
	Records    []Record
	Provider   ParseProvider
	Success    bool
	Err        error
}

// Parser extracts records from one chunk of text.
// Parsing is stateless and chunk-independent, which is what makes
// concurrent dispatch safe. Implementations return a failed
// ParseResult (never a non-nil error) for malformed, empty, or
// unavailable backend responses; the error return is reserved for
// caller cancellation.
type Parser interface {
	Parse(ctx context.Context, chunk Chunk, instructions string) (ParseResult, error)
}

// NoDataToken is the sentinel a model replies with when a chunk
// contains none of the requested information.
const NoDataToken = "NO_DATA"

// MaxResponseBytes bounds how much backend response text is decoded,
// preventing unbounded memory growth from adversarial responses.
const MaxResponseBytes = 1 << 20

// ExtractionPrompt builds the per-chunk user prompt shared by all
// parse backends. The model is instructed to return a JSON array of
// flat objects, or NoDataToken when nothing matches.
func ExtractionPrompt(instructions string, chunk Chunk) string {
	var sb strings.Builder
	sb.WriteString("Extract the following information: ")
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString("Respond with a JSON array of flat objects, one object per extracted item, ")
	sb.WriteString("using the same field names for every object. ")
	sb.WriteString("Do not nest objects or arrays inside values. ")
	fmt.Fprintf(&sb, "If the information is not present, reply exactly with: %s\n\n", NoDataToken)
	sb.WriteString("<content>\n")
	sb.WriteString(chunk.Text)
	sb.WriteString("\n</content>")
	return sb.String()
}

// DecodeRecords decodes a backend response into records. It tolerates
// markdown code fences and surrounding prose, locates the first JSON
// array, and preserves the key order of each object. Scalar values are
// stringified; null becomes an empty string; nested values are kept as
// compact JSON text.
//
// Returns EEMPTY for a blank response and EMALFORMED when no
// well-formed array can be found. A NoDataToken response decodes to
// zero records with no error.
func DecodeRecords(text string) ([]Record, error) {
	if len(text) > MaxResponseBytes {
		text = text[:MaxResponseBytes]
	}
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, Errorf(EEMPTY, "empty response")
	}
	s = stripFences(s)

	start := strings.IndexByte(s, '[')
	if start < 0 {
		if strings.Contains(s, NoDataToken) {
			return nil, nil
		}
		return nil, Errorf(EMALFORMED, "no JSON array in response")
	}

	dec := json.NewDecoder(strings.NewReader(s[start:]))
	if _, err := dec.Token(); err != nil { // opening bracket
		return nil, Errorf(EMALFORMED, "malformed response: %v", err)
	}

	var records []Record
	for dec.More() {
		rec, err := decodeRecord(dec)
		if err != nil {
			return nil, Errorf(EMALFORMED, "malformed record: %v", err)
		}
		if rec.Len() > 0 {
			records = append(records, rec)
		}
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, Errorf(EMALFORMED, "unterminated array: %v", err)
	}

	return records, nil
}

// decodeRecord decodes one JSON object via the token stream so that
// key order survives.
func decodeRecord(dec *json.Decoder) (Record, error) {
	var rec Record

	tok, err := dec.Token()
	if err != nil {
		return rec, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return rec, fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return rec, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return rec, fmt.Errorf("expected field name, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return rec, err
		}
		rec.Set(key, rawValueString(raw))
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return rec, err
	}
	return rec, nil
}

func rawValueString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// stripFences removes a surrounding markdown code fence, which models
// frequently add around JSON output.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := s[3:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:] // drop the language tag line
	}
	if i := strings.LastIndex(rest, "```"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}
