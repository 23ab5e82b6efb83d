//go:build bertlv_debug

package bertlv

import (
	"io"
	"math/rand"
	"os"
	"reflect"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier. Its value is a comma-delimited list of
[EventType] names or integers, e.g.: "enter,exit,tlv".

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "BERTLV_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
DefaultTracer is the package-level [Tracer] implementation. It writes
one structured JSON record per event.
*/
type DefaultTracer struct {
	mu     sync.Mutex
	log    zerolog.Logger
	levels EventType
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The input
[io.Writer] value represents the writer to which records shall be
written. No [EventType] is enabled initially.
*/
func NewDefaultTracer(w io.Writer) *DefaultTracer {
	return &DefaultTracer{log: zerolog.New(w)}
}

/*
EnableLevel adds [EventType] ev to the collection of events to be
recorded.

Note that this method can be used to override any such events
activated via the [EnvDebugVar] environment variable at runtime.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels |= ev
}

/*
DisableLevel removes [EventType] ev from the collection of events to be
recorded.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels &^= ev
}

/*
Enabled returns a Boolean value indicative of any bit of [EventType] e
being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levels&e != 0
}

/*
Trace writes [TraceRecord] rec to the writer handled by the receiver
instance. This method need not be executed by the end user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.Enabled(rec.Type) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var ev *zerolog.Event
	switch rec.Type & coreTracerMask {
	case EventEnter:
		ev = r.log.Debug().Str("dir", "enter").Strs("args", fmtArgs(rec.Args))
	case EventExit:
		ev = r.log.Debug().Str("dir", "exit").Strs("ret", fmtArgs(rec.Ret))
	default:
		ev = r.log.Debug().Str("dir", "info").Strs("args", fmtArgs(rec.Args))
	}

	ev.Time(zerolog.TimestampFieldName, rec.Time).
		Str("event", rec.Type.String()).
		Msg(trimFuncName(rec.Func))
}

func trimFuncName(full string) string {
	if i := lidx(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	return replaceAll(full, "go-bertlv.", "")
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info or Exit, plus any category bits
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter: parameters
	Ret  []any     // On Exit: return values (last entry may be error)
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

const packetIDLen = 16

func makePacketID() string {
	buf := make([]byte, packetIDLen)
	for i := range buf {
		buf[i] = hexDigits[rand.Intn(16)]
	}
	return string(buf)
}

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	lt, isLT := t.(levelTracer)
	if isLT && !lt.Enabled(level) {
		return
	}

	fn := "unknown"
	if pc, _, _, ok := runtime.Caller(2); ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	if cntns(fn, ".func") {
		fn = fn[:lidx(fn, ".func")]
	}

	rec := TraceRecord{Time: time.Now(), Type: level, Func: fn}
	if !isLT || lt.Enabled(EventIO) {
		if len(args) == 0 {
			args = []any{"no values"}
		}
		if level&EventExit != 0 {
			rec.Ret = args
		} else {
			rec.Args = args
		}
	}
	t.Trace(rec)
}

func debugInfo(args ...any)      { debugEvent(EventInfo, args...) }
func debugIO(args ...any)        { debugEvent(EventIO, args...) }
func debugPacket(args ...any)    { debugEvent(EventInfo|EventPacket, args...) }
func debugTLV(args ...any)       { debugEvent(EventInfo|EventTLV, args...) }
func debugComposite(args ...any) { debugEvent(EventInfo|EventComposite, args...) }
func debugPrim(args ...any)      { debugEvent(EventInfo|EventPrim, args...) }
func debugAdapter(args ...any)   { debugEvent(EventInfo|EventAdapter, args...) }
func debugTrace(args ...any)     { debugEvent(EventInfo|EventTrace, args...) }
func debugCodec(args ...any)     { debugEvent(EventInfo|EventCodec, args...) }
func debugEnter(args ...any)     { debugEvent(EventEnter, args...) }
func debugExit(args ...any)      { debugEvent(EventExit, args...) }

// strictly for debugging.
type labeledItem struct {
	L string
	V any
}

func newLItem(value any, labels ...any) (li labeledItem) {
	li = labeledItem{V: value}
	var l []string
	for _, label := range labels {
		if s, ok := label.(string); ok {
			l = append(l, s)
		}
	}
	li.L = join(l, ` `)
	return
}

func (r labeledItem) String() string {
	label := r.L
	if label == "" {
		if _, isErr := r.V.(error); isErr || r.V == nil {
			label = "error"
		} else {
			label = "<no label>"
		}
	}
	return label + ":" + fmtArg(r.V)
}

func fmtArgs(args []any) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmtArg(a)
	}
	return out
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case error:
		s = v.Error()
	case string:
		s = v
	case int:
		s = itoa(v)
	case uint64:
		s = fmtUint(v, 10)
	case bool:
		s = bool2str(v)
	case []byte:
		s = "0x" + uc(hexstr(v))
	case labeledItem:
		s = v.String()
	case Class, Form, Header, EventType:
		s = v.(interface{ String() string }).String()
	case TLV:
		s = "TLV:" + v.Header().String()
	case *Packet:
		s = "<nil packet>"
		if v != nil {
			s = "PACKET:" + v.id + v.String()
		}
	default:
		s = reflect.TypeOf(v).String()
	}

	return
}

func init() {
	evar := os.Getenv(EnvDebugVar)
	if evar == "" {
		return
	}

	var levels EventType
	for _, tok := range split(evar, ",") {
		if ev, ok := parseEventType(tok); ok {
			levels |= ev
		}
	}

	dt := NewDefaultTracer(os.Stderr)
	dt.EnableLevel(levels)
	EnableDebug(dt)
	debugInfo(newLItem(levels.String(), "events"))
}
