package packet

import (
	"errors"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"golang.org/x/net/bpf"
)

// ErrUnsupportedFilter is returned for compiled filters the userland VM can not run.
var ErrUnsupportedFilter = errors.New("unsupported BPF filter")

// BPFFilter matches frames in userland, the backend opens
// a new session per frame so kernel filters can not be attached.
type BPFFilter struct {
	vm *bpf.VM
}

// NewBPFFilter compiles the tcpdump filter expression for the link type.
// maxPacketLength is the snaplen the filter is compiled for.
func NewBPFFilter(linkType layers.LinkType, maxPacketLength int, expr string) (*BPFFilter, error) {
	pcapBPF, err := pcap.CompileBPFFilter(linkType, maxPacketLength, expr)
	if err != nil {
		return nil, err
	}
	rawIns := make([]bpf.RawInstruction, 0, len(pcapBPF))
	for _, ins := range pcapBPF {
		rawIns = append(rawIns, bpf.RawInstruction{
			Op: ins.Code,
			Jt: ins.Jt,
			Jf: ins.Jf,
			K:  ins.K,
		})
	}
	vm, err := newBPFVM(rawIns)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", expr, err)
	}
	return &BPFFilter{vm}, nil
}

func newBPFVM(rawIns []bpf.RawInstruction) (*bpf.VM, error) {
	ins, allDecoded := bpf.Disassemble(rawIns)
	if !allDecoded {
		for i, in := range ins {
			if raw, ok := in.(bpf.RawInstruction); ok {
				return nil, fmt.Errorf("%w: opcode %#x at %d", ErrUnsupportedFilter, raw.Op, i)
			}
		}
		return nil, ErrUnsupportedFilter
	}
	vm, err := bpf.NewVM(ins)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFilter, err)
	}
	return vm, nil
}

func (f *BPFFilter) Matches(data []byte) bool {
	n, err := f.vm.Run(data)
	return err == nil && n > 0
}

type filterProcessor struct {
	f *BPFFilter
	p Processor
}

// NewFilterProcessor passes only the frames matching f to p.
func NewFilterProcessor(f *BPFFilter, p Processor) Processor {
	return &filterProcessor{f, p}
}

func (fp *filterProcessor) ProcessPacketData(data []byte, ci *gopacket.CaptureInfo) error {
	if !fp.f.Matches(data) {
		return nil
	}
	return fp.p.ProcessPacketData(data, ci)
}
