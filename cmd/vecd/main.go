package main

import (
	"errors"
	"flag"
	"fmt"
	gio "io"
	"net"
	"os"
	"os/signal"
	"runtime/trace"
	"syscall"
	"time"

	"github.com/colinrgodsey/serial"
	"github.com/colinrgodsey/vecd/config"
	"github.com/colinrgodsey/vecd/io"
	"github.com/colinrgodsey/vecd/pipeline"

	"github.com/pkg/profile"
)

const normalQueueSize = 8

var (
	configPath string
	devicePath string
	baud       int
	addr       string

	doTrace bool
	doProf  bool

	traceOut gio.Writer = os.Stderr
)

func handler(head io.Conn, size int, h func(head, tail io.Conn)) (tail io.Conn) {
	head = head.Flip()
	tail = io.NewConn(size, size)

	go h(head, tail)

	return
}

func vecdPipeline(c io.Conn, conf config.Config) {
	c = handler(c, normalQueueSize, pipeline.SourceHandler)
	go pipeline.EvalHandler(conf)(c.Flip())
}

func main() {
	flag.StringVar(&configPath, "config", "", "Path to HJSON config file")
	flag.StringVar(&devicePath, "device", "", "Path to serial device")
	flag.IntVar(&baud, "baud", 0, "Baud rate for serial device")
	flag.StringVar(&addr, "addr", "", "TCP address to connect to")

	flag.BoolVar(&doTrace, "trace", false, "Enable tracing (debug)")
	flag.BoolVar(&doProf, "prof", false, "Enable profiling (debug)")
	flag.Parse()

	os.Exit(run())
}

// run returns the exit code, after deferred trace and profile output
// has been flushed.
func run() int {
	conf := config.Default()
	if configPath != "" {
		var err error
		if conf, err = config.LoadConfig(configPath); err != nil {
			fmt.Println(err)
			return 1
		}
	}

	if doTrace {
		trace.Start(traceOut)
		defer trace.Stop()
	}

	if doProf {
		defer profile.Start().Stop()
	}

	c := io.NewConn(32, 32)
	vecdPipeline(c, conf)
	if err := source(c.Flip()); err != nil {
		fmt.Println(fmt.Errorf("vecd: %w", err))
		return 1
	}
	return 0
}

func closeOnExit(closer func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		closer()
	}()
}

// source serves the pipeline over the serial device, the tcp
// address or stdin/stdout, whichever is configured.
func source(c io.Conn) error {
	var rw gio.ReadWriteCloser
	var err error

	switch {
	case devicePath != "" || baud != 0:
		if devicePath == "" || baud <= 0 {
			return errors.New("need both device and baud")
		}
		cfg := &serial.Config{Name: devicePath, Baud: baud}
		if rw, err = serial.OpenPort(cfg); err != nil {
			return fmt.Errorf("failed to open %v: %w", devicePath, err)
		}
		closeOnExit(func() {
			fmt.Println("info:closing device serial")
			rw.Close()
		})
	case addr != "":
		if rw, err = net.DialTimeout("tcp", addr, 10*time.Second); err != nil {
			return fmt.Errorf("failed to connect to %v: %w", addr, err)
		}
	default:
		return io.LinePipe(os.Stdin, os.Stdout, c)
	}

	defer rw.Close()
	return io.LinePipe(rw, rw, c)
}
