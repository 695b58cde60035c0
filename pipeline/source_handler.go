package pipeline

import (
	"fmt"
	"strings"

	"github.com/colinrgodsey/vecd/expr"
	"github.com/colinrgodsey/vecd/io"
)

// OpLine resets the expected line number to its own N.
const OpLine = "LINE"

// SourceHandler parses protocol lines from head into expr.Commands
// for tail. Numbered lines must arrive in sequence unless they
// are a LINE command. Lines that fail are sent to tail as errors, so
// replies stay in order. Everything read from tail goes back to head.
func SourceHandler(head, tail io.Conn) {
	go func() {
		for msg := range tail.Rc() {
			head.Write(msg)
		}
		head.Close()
	}()

	lastN := -1
	for msg := range head.Rc() {
		str, ok := msg.(string) // only strings
		if !ok {
			tail.Write(msg)
			continue
		}

		if strings.IndexRune(str, ';') == 0 || str == "" {
			continue // comment-only or blank line
		}

		c, err := expr.Parse(str)
		if err != nil {
			tail.Write(fmt.Errorf("failed parsing command (%w)", err))
			continue
		}

		if c.Num != -1 {
			if !c.Is(OpLine) && lastN != -1 && c.Num != lastN+1 {
				tail.Write(fmt.Errorf("line N%v out of sequence, expected N%v", c.Num, lastN+1))
				continue
			}
			lastN = c.Num
		}

		tail.Write(c)
	}
	tail.Close()
}
