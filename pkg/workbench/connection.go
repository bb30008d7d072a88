package workbench

import (
	"context"

	"github.com/gorilla/websocket"
	clog "github.com/ibrahimcesar/lolli/pkg/log"
)

type connectionID int

type connection struct {
	clientConn *websocket.Conn
	id         connectionID
	workbench  *Workbench
	nextStmtID int
	messages   chan *StatementMessage
	context    context.Context
}

func newConnection(wsConn *websocket.Conn, wb *Workbench, ID int) *connection {
	ctx := context.WithValue(wb.ctx, clog.ConnIDKey, ID)
	conn := &connection{
		clientConn: wsConn,
		id:         connectionID(ID),
		workbench:  wb,
		nextStmtID: 0,
		messages:   make(chan *StatementMessage),
		context:    ctx,
	}
	go conn.writeMessagesToSocket()
	return conn
}

func (conn *connection) Ctx() context.Context {
	return conn.context
}

func (conn *connection) writeMessagesToSocket() {
	for msg := range conn.messages {
		if err := conn.clientConn.WriteJSON(msg); err != nil {
			clog.Println(conn, "error writing to socket:", err)
			break
		}
	}
}

func (conn *connection) handleStatements() {
	clog.Println(conn, "initiated from", conn.clientConn.RemoteAddr())
	for {
		_, message, readErr := conn.clientConn.ReadMessage()
		if readErr != nil {
			clog.Println(conn, "terminated:", readErr)
			conn.workbench.removeConn(conn)
			return
		}
		conn.runStatement(string(message))
	}
}

// runStatement executes one statement synchronously. Statements are
// independent; each gets its own id for the response and the logs.
func (conn *connection) runStatement(raw string) {
	stmt := newStatement(raw, conn.nextStmtID, conn)
	conn.nextStmtID++

	stmt.handle()
}
