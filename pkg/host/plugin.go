package host

import (
	"fmt"
	"math"

	"github.com/acolita/msdialog/pkg/msdialog"
)

// Plugin method names.
const (
	MethodDecodeRange          = "decode_range"
	MethodDecodeRangeNthBubble = "decode_range_nth_bubble"
	MethodDecodeSelection      = "decode_selection"
	MethodDecodeImmBuf         = "decode_imm_buf"
)

// Method describes a plugin method to the host.
type Method struct {
	Name      string
	HumanName string // optional display name
	Desc      string
	Params    []string // all parameters are unsigned integers
}

var methods = []Method{
	{
		Name:   MethodDecodeRange,
		Desc:   "Decodes a range of bytes as dialog text",
		Params: []string{"from", "to"},
	},
	{
		Name:   MethodDecodeRangeNthBubble,
		Desc:   "Decodes a range of bytes as dialog text (nth bubble)",
		Params: []string{"from", "to", "bubble"},
	},
	{
		Name: MethodDecodeSelection,
		Desc: "Decodes the selection as dialog text",
	},
	{
		Name:      MethodDecodeImmBuf,
		HumanName: "Decode immediate buffer",
		Desc:      "Decodes the on-screen dialog buffer",
		Params:    []string{"offset", "scroll"},
	},
}

// Plugin dispatches host method calls to the decoders.
// The zero value uses the default tables.
type Plugin struct {
	opts []msdialog.Option
}

// NewPlugin creates a plugin that decodes with the given options.
func NewPlugin(opts ...msdialog.Option) *Plugin {
	return &Plugin{opts: opts}
}

// Name returns the plugin name shown by the host.
func (p *Plugin) Name() string {
	return "mario-story-dialog"
}

// Desc returns the plugin description shown by the host.
func (p *Plugin) Desc() string {
	return "Decoder for Mario Story (Japanese Paper Mario) dialog"
}

// Methods lists the methods Call accepts.
func (p *Plugin) Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// Call runs the named method against src and returns its text result.
func (p *Plugin) Call(src Source, name string, args ...uint64) (string, error) {
	tracer().Debugf("call %s%v", name, args)
	switch name {
	case MethodDecodeRange:
		from, to, err := rangeArgs(name, args, 2)
		if err != nil {
			return "", err
		}
		data, err := rangeBytes(src, from, to)
		if err != nil {
			return "", err
		}
		return msdialog.DecodeFullText(data, p.opts...)

	case MethodDecodeRangeNthBubble:
		from, to, err := rangeArgs(name, args, 3)
		if err != nil {
			return "", err
		}
		if args[2] > math.MaxInt32 {
			return "", fmt.Errorf("%w: bubble index %d", ErrInvalidArguments, args[2])
		}
		data, err := rangeBytes(src, from, to)
		if err != nil {
			return "", err
		}
		return msdialog.DecodeFullTextNthBubble(data, int(args[2]), p.opts...)

	case MethodDecodeSelection:
		if len(args) != 0 {
			return "", fmt.Errorf("%w: %s takes no arguments", ErrInvalidArguments, name)
		}
		from, to, ok := src.Selection()
		if !ok {
			return "", ErrNoSelection
		}
		data, err := rangeBytes(src, from, to)
		if err != nil {
			return "", err
		}
		return msdialog.DecodeFullText(data, p.opts...)

	case MethodDecodeImmBuf:
		if len(args) != 2 {
			return "", fmt.Errorf("%w: %s takes 2 arguments, got %d", ErrInvalidArguments, name, len(args))
		}
		if args[0] > math.MaxInt32 {
			return "", fmt.Errorf("%w: offset %d", ErrOutOfBounds, args[0])
		}
		offset := int(args[0])
		if args[1] > math.MaxUint32 {
			return "", fmt.Errorf("%w: scroll %d", ErrInvalidArguments, args[1])
		}
		data, err := rangeBytes(src, offset, offset+msdialog.BufferSize)
		if err != nil {
			return "", err
		}
		return msdialog.DecodeImmediateBuffer(data, uint32(args[1]), p.opts...).Text, nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
}

// rangeArgs checks the argument count and converts the first two arguments
// to offsets.
func rangeArgs(name string, args []uint64, want int) (int, int, error) {
	if len(args) != want {
		return 0, 0, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrInvalidArguments, name, want, len(args))
	}
	const limit = math.MaxInt32
	if args[0] > limit || args[1] > limit {
		return 0, 0, fmt.Errorf("%w: offsets %d, %d", ErrOutOfBounds, args[0], args[1])
	}
	return int(args[0]), int(args[1]), nil
}

func rangeBytes(src Source, from, to int) ([]byte, error) {
	data, ok := src.Bytes(from, to)
	if !ok {
		return nil, fmt.Errorf("%w: %d..%d", ErrOutOfBounds, from, to)
	}
	return data, nil
}
