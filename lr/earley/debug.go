package earley

import (
	"bytes"

	"github.com/npillmayer/cnl/lr"
)

// DumpChart writes all columns of the chart to the trace.
func (p *Parser) DumpChart() {
	for k := range p.columns {
		p.dumpColumn(k)
	}
}

func (p *Parser) dumpColumn(k int) {
	c := p.columns[k]
	if k > 0 {
		tracer().Debugf("--- Column %04d after %v ------------------------", k, p.tokens[k-1])
	} else {
		tracer().Debugf("--- Column %04d ------------------------------------", k)
	}
	for i := 0; i < c.size(); i++ {
		tracer().Debugf("[%2d] %s", i+1, c.item(i))
	}
}

func itemSetString(items []lr.Item) string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for _, item := range items {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
