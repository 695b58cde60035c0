package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

const endLine = '\n'

// LinePipe turns the reader and writer into a line based Conn.
// Each non-empty line read is sent to the read side of c, which is
// closed when the reader is done. Messages on the write side of c
// are written out one per line until it is closed.
// Returns the first read or write error, nil on a clean EOF.
func LinePipe(reader io.Reader, writer io.Writer, c Conn) error {
	errs := make(chan error, 2)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		defer close(c.rd)

		reader := bufio.NewReader(reader)
		for {
			str, lerr := reader.ReadString(endLine)
			if str = strings.TrimSpace(str); str != "" {
				c.rd <- str
			}
			if lerr == io.EOF {
				return
			} else if lerr != nil {
				errs <- lerr
				return
			}
		}
	}()

	go func() {
		defer wg.Done()

		writer := bufio.NewWriter(writer)
		for data := range c.wr {
			if _, lerr := writer.WriteString(Line(data)); lerr != nil {
				errs <- lerr
				for range c.wr {
					// drop the rest so writers don't block
				}
				return
			}
			if lerr := writer.Flush(); lerr != nil {
				errs <- lerr
				for range c.wr {
				}
				return
			}
		}
	}()

	wg.Wait()
	select {
	case err := <-errs:
		return err // return first error
	default:
		return nil
	}
}

// Line renders a message as a single protocol line, newline included.
func Line(msg Any) string {
	var str string
	switch v := msg.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	case error:
		str = "error:" + v.Error()
	case fmt.Stringer:
		str = v.String()
	default:
		str = fmt.Sprint(v)
	}
	return strings.TrimSpace(str) + string(endLine)
}
