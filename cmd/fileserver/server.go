package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"path"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	statusOK       = "HTTP/1.1 200 OK"
	statusNotFound = "HTTP/1.1 404 NOT FOUND"

	bindRetryInterval = 300 * time.Millisecond
	sleepRouteDelay   = 5 * time.Second
)

// bindWithRetry binds a TCP listener to addr, retrying every 300ms until
// timeout expires. Useful when the port is temporarily held by a previous
// process.
func bindWithRetry(addr string, timeout time.Duration) (net.Listener, error) {
	start := time.Now()
	for {
		l, err := net.Listen("tcp", addr)
		if err == nil {
			return l, nil
		}
		if time.Since(start) >= timeout {
			return nil, err
		}
		time.Sleep(bindRetryInterval)
	}
}

// route maps a request line to a response status, the file to serve relative
// to the assets dir, and an artificial delay applied before serving.
//
//   - "GET / HTTP/1.1"       -> index.html
//   - "GET /sleep HTTP/1.1"  -> index.html after a 5s delay
//   - other GET paths        -> the matching file under the assets dir,
//     or 404.html when it does not exist
func route(requestLine, assetsDir string) (status, filename string, delay time.Duration) {
	switch requestLine {
	case "GET / HTTP/1.1":
		return statusOK, "index.html", 0
	case "GET /sleep HTTP/1.1":
		return statusOK, "index.html", sleepRouteDelay
	}

	var p string
	if _, err := fmt.Sscanf(requestLine, "GET %s HTTP/1.1", &p); err == nil {
		// path.Clean plus the leading-slash strip keeps lookups inside the
		// assets dir.
		p = strings.TrimPrefix(path.Clean(p), "/")
		if p != "" && !strings.HasPrefix(p, "..") {
			if _, err := os.Stat(path.Join(assetsDir, p)); err == nil {
				return statusOK, p, 0
			}
		}
	}

	return statusNotFound, "404.html", 0
}

// handleConnection reads the request line, routes it, and writes a minimal
// HTTP/1.1 response. It is the job body submitted to the pool: one closure
// per accepted connection.
func handleConnection(conn net.Conn, assetsDir string) {
	defer conn.Close()

	requestLine, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		log.WithError(err).Warn("failed to read request line")
		return
	}
	requestLine = strings.TrimRight(requestLine, "\r\n")

	status, filename, delay := route(requestLine, assetsDir)
	if delay > 0 {
		time.Sleep(delay)
	}

	body, err := os.ReadFile(path.Join(assetsDir, filename))
	if err != nil {
		log.WithError(err).WithField("file", filename).Error("failed to read response file")
		return
	}

	response := fmt.Sprintf("%s\r\nContent-Length: %d\r\n\r\n%s", status, len(body), body)
	if _, err := conn.Write([]byte(response)); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}
