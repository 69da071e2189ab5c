// Tcplistener prints the request line of every connection without answering it.
//
//	printf 'GET / HTTP/1.1\r\n' | nc 127.0.0.1 8081
package main

import (
	"hellotcp/internal/request"
	"net"

	"github.com/sirupsen/logrus"
)

const Addr = "127.0.0.1:8081"

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	tcp, err := net.Listen("tcp", Addr)
	if err != nil {
		logrus.Fatalf("failed to open: %v", err)
	}
	defer tcp.Close()

	logrus.Infof("Listening for TCP traffic on %s", Addr)
	for {
		conn, err := tcp.Accept()
		if err != nil {
			logrus.Fatalf("failed to accept: %v", err)
		}
		printLine(conn)
	}
}

func printLine(conn net.Conn) {
	defer conn.Close()

	entry := logrus.WithField("remote", conn.RemoteAddr().String())

	line, err := request.ReadLine(conn)
	if err != nil {
		entry.WithError(err).Warn("failed to read request line")
		return
	}

	entry.WithField("class", request.Classify(line)).Infof("Request line: %q", request.Trim(line))
}
