package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Command is a single parsed protocol line:
//
//	[N<num> ]OP [arg ...][*<checksum>][ ; comment]
type Command struct {
	Op   string
	Num  int
	Args Args
}

var (
	// ErrChecksumBad is returned for bad line checksums
	ErrChecksumBad = errors.New("expr: bad checksum")

	// ErrEmpty is returned for lines without a command
	ErrEmpty = errors.New("expr: empty command")

	// ErrBadOp is returned when the op is not a plain word
	ErrBadOp = errors.New("expr: bad op")
)

// New creates a Command without a line number.
func New(op string, args ...string) Command {
	return Command{strings.ToUpper(op), -1, args}
}

// Parse creates a Command from a string
func Parse(line string) (c Command, err error) {
	// remove comments
	spl := strings.Split(line, ";")
	line = strings.TrimSpace(spl[0])

	// checksum verification if provided
	if spl := strings.Split(line, "*"); len(spl) > 1 {
		line = strings.TrimSpace(spl[0])
		lchs, cerr := strconv.Atoi(strings.TrimSpace(spl[1]))
		if cerr != nil || lchs != int(checksum(line)) {
			err = ErrChecksumBad
			return
		}
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		err = ErrEmpty
		return
	}

	c.Num = -1
	if f := fields[0]; isLineNum(f) {
		if c.Num, err = strconv.Atoi(f[1:]); err != nil || c.Num < 0 {
			err = fmt.Errorf("expr: bad line number %q", f)
			return
		}
		fields = fields[1:]
		if len(fields) == 0 {
			err = ErrEmpty
			return
		}
	}

	c.Op = strings.ToUpper(fields[0])
	for _, r := range c.Op {
		if r < 'A' || r > 'Z' {
			err = fmt.Errorf("%w %q", ErrBadOp, fields[0])
			return
		}
	}
	c.Args = Args(fields[1:])

	return
}

// N<digit>... so ops starting with N (NORM) are not mistaken for one
func isLineNum(f string) bool {
	return len(f) > 1 && (f[0] == 'N' || f[0] == 'n') && f[1] >= '0' && f[1] <= '9'
}

func checksum(s string) (chs byte) {
	for _, b := range []byte(s) {
		chs ^= b
	}
	return
}

func (c Command) String() string {
	str := strings.TrimSpace(fmt.Sprintf("%v %v", c.Op, c.Args))
	if c.Num == -1 {
		return str
	}
	str = fmt.Sprintf("N%v %v", c.Num, str)
	return fmt.Sprintf("%v*%v", str, checksum(str))
}

// Is returns true if c is the given op
func (c Command) Is(op string) bool {
	return c.Op == strings.ToUpper(op)
}
