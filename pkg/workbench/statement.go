package workbench

import (
	"context"
	"fmt"

	clog "github.com/ibrahimcesar/lolli/pkg/log"
	"github.com/ibrahimcesar/lolli/pkg/parse"
)

type statement struct {
	connection   *connection
	rawStatement string
	id           int // unique within containing connection

	context context.Context
}

func (stmt *statement) Ctx() context.Context {
	return stmt.context
}

func newStatement(rawStatement string, ID int, conn *connection) *statement {
	ctx := context.WithValue(conn.Ctx(), clog.StmtIDKey, ID)
	return &statement{
		connection:   conn,
		rawStatement: rawStatement,
		id:           ID,
		context:      ctx,
	}
}

func (stmt *statement) handle() {
	if err := stmt.validateAndRun(); err != nil {
		clog.Println(stmt, err.Error())
		stmt.writeErrorMessage(err)
	}
}

func (stmt *statement) validateAndRun() error {
	parsed, err := parse.ParseStatement(stmt.rawStatement)
	if err != nil {
		return &parseError{error: err}
	}

	wb := stmt.connection.workbench
	if err := wb.validateStatement(parsed); err != nil {
		return &validationError{error: err}
	}
	return wb.run(parsed, stmt)
}

type MessageToClientType int

const (
	ErrorMessage MessageToClientType = iota
	AckMessage
	ResultMessage
)

func (m *MessageToClientType) String() string {
	switch *m {
	case ErrorMessage:
		return "error"
	case AckMessage:
		return "ack"
	case ResultMessage:
		return "result"
	}
	panic(fmt.Errorf("unknown type %d", *m))
}

func (m MessageToClientType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MessageToClientType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*m = ErrorMessage
	case "ack":
		*m = AckMessage
	case "result":
		*m = ResultMessage
	}
	return nil
}

// StatementMessage pairs a response with the id of the statement that
// produced it.
type StatementMessage struct {
	StatementID int
	Message     *MessageToClient
}

type MessageToClient struct {
	Type          MessageToClientType `json:"type"`
	ErrorMessage  *string             `json:"error,omitempty"`
	AckMessage    *string             `json:"ack,omitempty"`
	ResultMessage *StatementResult    `json:"result,omitempty"`
}

// StatementResult is the payload for statements that return output
// rather than a bare ack. Provable is set only for PROVE.
type StatementResult struct {
	Provable *bool  `json:"provable,omitempty"`
	Output   string `json:"output"`
}

func (stmt *statement) writeErrorMessage(err error) {
	errStr := err.Error()
	stmt.writeMessage(&MessageToClient{
		Type:         ErrorMessage,
		ErrorMessage: &errStr,
	})
}

func (stmt *statement) writeAckMessage(message string) {
	stmt.writeMessage(&MessageToClient{
		Type:       AckMessage,
		AckMessage: &message,
	})
}

func (stmt *statement) writeResult(result *StatementResult) {
	stmt.writeMessage(&MessageToClient{
		Type:          ResultMessage,
		ResultMessage: result,
	})
}

func (stmt *statement) writeMessage(message *MessageToClient) {
	stmt.connection.messages <- &StatementMessage{
		StatementID: stmt.id,
		Message:     message,
	}
}
