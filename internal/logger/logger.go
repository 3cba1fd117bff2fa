package logger

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

var Log = Logger{}

const EnvLogFile = "TEXTMEMO_LOG"

type Logger struct {
	isEnabled bool
	file      *os.File
	stream    chan string
	done      chan struct{}
	logger    *log.Logger
	layout    string
	once      sync.Once
}

// Start enables logging when TEXTMEMO_LOG names a file, otherwise every call is a no-op.
func (this *Logger) Start() {
	logfilename, exists := os.LookupEnv(EnvLogFile)
	if !exists || logfilename == "" { this.isEnabled = false; return }

	file, err := os.OpenFile(logfilename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil { log.Println("textmemo: cannot open log file:", err); return }

	this.isEnabled = true
	this.file = file
	this.logger = log.New(file, "", 0)
	this.layout = "2006-01-02 15:04:05.000"
	this.stream = make(chan string, 64)
	this.done = make(chan struct{})

	go func() {
		defer close(this.done)
		for message := range this.stream {
			this.log(message)
		}
	}()
}

func (this *Logger) log(message string) {
	now := time.Now().Format(this.layout)
	this.logger.Printf("%s %s", now, message)
}

func (this *Logger) Info(args ...string) {
	if !this.isEnabled { return }
	this.stream <- strings.Join(args, " ")
}

func (this *Logger) Error(args ...string) {
	if !this.isEnabled { return }
	this.stream <- "[error] " + strings.Join(args, " ")
}

// Stop flushes pending messages and closes the log file.
func (this *Logger) Stop() {
	if !this.isEnabled { return }
	this.once.Do(func() {
		close(this.stream)
		<-this.done
		this.isEnabled = false
		this.file.Close()
	})
}
