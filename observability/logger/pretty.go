package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

//nolint:gochecknoglobals // palette is a static lookup shared across encoder instances
var levelPalette = map[zapcore.Level]*color.Color{
	zapcore.DebugLevel: color.New(color.FgMagenta),
	zapcore.InfoLevel:  color.New(color.FgGreen),
	zapcore.WarnLevel:  color.New(color.FgYellow),
	zapcore.ErrorLevel: color.New(color.FgRed),
	zapcore.FatalLevel: color.New(color.FgHiRed, color.Bold),
}

// prettyLogger wraps zap's JSON encoder to produce colorized, indented
// output suited for terminals.
type prettyLogger struct {
	zapcore.Encoder
}

// Clone ensures derived loggers keep the pretty encoder wrapper.
func (e *prettyLogger) Clone() zapcore.Encoder {
	return &prettyLogger{Encoder: e.Encoder.Clone()}
}

// newPrettyLogger creates a zap logger backed by the pretty encoder.
func newPrettyLogger(cfg *zap.Config) *zap.Logger {
	enc := &prettyLogger{Encoder: zapcore.NewJSONEncoder(cfg.EncoderConfig)}
	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), cfg.Level)
	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(os.Stderr)))
}

// EncodeEntry formats a log entry as a colored header line followed by one
// indented line per structured field, preserving field order.
func (e *prettyLogger) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	jsonBuf, err := e.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}

	raw := append([]byte(nil), jsonBuf.Bytes()...)
	jsonBuf.Reset()

	payload, unmarshalErr := unmarshalOrdered(bytes.TrimSpace(raw))
	if unmarshalErr != nil {
		// Fall back to the raw JSON line rather than dropping the entry.
		_, _ = jsonBuf.Write(raw)
		return jsonBuf, nil
	}

	jsonBuf.AppendString(buildHeader(entry))

	for pair := payload.Oldest(); pair != nil; pair = pair.Next() {
		if isReservedKey(pair.Key) {
			continue
		}
		jsonBuf.AppendString("  " + color.CyanString(pair.Key) + ": " + renderValue(pair.Value) + "\n")
	}

	return jsonBuf, nil
}

func buildHeader(entry zapcore.Entry) string {
	ts := entry.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	level := strings.ToUpper(entry.Level.String())
	if c, ok := levelPalette[entry.Level]; ok {
		level = c.Sprint(level)
	}

	var b strings.Builder
	b.WriteString(color.HiBlackString("[" + ts.Format(time.DateTime) + "]"))
	b.WriteByte(' ')
	b.WriteString(level)
	if entry.LoggerName != "" {
		b.WriteByte(' ')
		b.WriteString(color.HiBlackString("(" + entry.LoggerName + ")"))
	}
	if entry.Message != "" {
		b.WriteByte(' ')
		b.WriteString(entry.Message)
	}
	b.WriteByte('\n')
	return b.String()
}

func isReservedKey(key string) bool {
	switch key {
	case messageKey, levelKey, nameKey, timeKey:
		return true
	default:
		return false
	}
}

// renderValue renders scalars inline and nested structures as indented JSON.
func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case nil:
		return "null"
	default:
		out, err := json.MarshalIndent(val, "  ", "  ")
		if err != nil {
			return "<unrenderable>"
		}
		return string(out)
	}
}

// unmarshalOrdered unmarshals a JSON object preserving key order.
func unmarshalOrdered(data []byte) (*orderedmap.OrderedMap[string, any], error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	return decodeObject(decoder)
}

//nolint:gochecknoglobals // sentinel for the fallback path
var errNotObject = errors.New("log entry payload is not a JSON object")

func decodeObject(decoder *json.Decoder) (*orderedmap.OrderedMap[string, any], error) {
	om := orderedmap.New[string, any]()

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyToken.(string)

		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}

		om.Set(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return om, nil
}

func decodeValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := token.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		}
	}

	return token, nil
}

func decodeArray(decoder *json.Decoder) ([]any, error) {
	var arr []any
	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}
