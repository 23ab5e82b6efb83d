//go:build !bertlv_debug

package bertlv

type DefaultTracer struct{}
type labeledItem struct{}

func debugEnter(_ ...any)                  {}
func debugExit(_ ...any)                   {}
func debugEvent(_ EventType, _ ...any)     {}
func debugInfo(_ ...any)                   {}
func debugIO(_ ...any)                     {}
func debugPacket(_ ...any)                 {}
func debugTLV(_ ...any)                    {}
func debugComposite(_ ...any)              {}
func debugPrim(_ ...any)                   {}
func debugAdapter(_ ...any)                {}
func debugTrace(_ ...any)                  {}
func debugCodec(_ ...any)                  {}
func makePacketID() string                 { return "" }
func newLItem(_ any, _ ...any) labeledItem { return labeledItem{} }
func (_ labeledItem) String() string       { return `` }
