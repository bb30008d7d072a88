package workbench

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ibrahimcesar/lolli/pkg/util"
	"github.com/phayes/freeport"
)

func NewTestServer() (*Server, *Client, string, error) {
	dir, err := ioutil.TempDir("", "")
	if err != nil {
		return nil, nil, "", err
	}

	port := freeport.GetPort()

	server := NewServer(dir+"/test.data", "localhost", port)
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	// The listener binds on the server goroutine; retry the dial until
	// it is up.
	url := fmt.Sprintf("ws://localhost:%d/ws", port)
	var client *Client
	for attempt := 0; ; attempt++ {
		client, err = NewClient(url)
		if err == nil {
			break
		}
		if attempt >= 100 {
			os.RemoveAll(dir)
			return nil, nil, "", err
		}
		time.Sleep(10 * time.Millisecond)
	}

	return server, client, dir, nil
}

// exec stmt => expect error or ack
// run stmt => expect error or output (substring match)
type simpleTestStmt struct {
	exec string
	run  string

	ack      string
	error    string
	contains string
}

type testServerRef struct {
	server  *Server
	client  *Client
	dataDir string
}

func (tsr *testServerRef) Close() {
	tsr.client.Close()
	tsr.server.Close()
	os.RemoveAll(tsr.dataDir)
}

// runSimpleTestScript spins up a test server and runs statements on it,
// checking each result. Output checks are substring matches; rendered
// trees are too positional for exact comparison to be useful.
func runSimpleTestScript(t *testing.T, cases []simpleTestStmt) *testServerRef {
	server, client, dir, err := NewTestServer()
	if err != nil {
		t.Fatal(err)
	}

	for idx, testCase := range cases {
		if testCase.exec != "" {
			result, err := client.Exec(testCase.exec)
			if util.AssertError(t, idx, testCase.error, err) {
				continue
			}
			if !strings.HasPrefix(result, testCase.ack) {
				t.Fatalf(`case %d: expected ack "%s"; got "%s"`, idx, testCase.ack, result)
			}
			continue
		}
		if testCase.run != "" {
			res, err := client.Run(testCase.run)
			if util.AssertError(t, idx, testCase.error, err) {
				continue
			}
			if !strings.Contains(res.Output, testCase.contains) {
				t.Fatalf("case %d: expected output containing:\n%s\ngot:\n%s",
					idx, testCase.contains, res.Output)
			}
		}
	}

	return &testServerRef{
		server:  server,
		client:  client,
		dataDir: dir,
	}
}
