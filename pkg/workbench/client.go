package workbench

import (
	"errors"
	"log"

	"github.com/gorilla/websocket"
)

type Client struct {
	WebSocketConn    *websocket.Conn
	URL              string
	NextStatementID  int
	StatementsToSend chan *StatementRequest
	IncomingMessages chan *StatementMessage
	Pending          map[int]*ClientStatement
}

type StatementRequest struct {
	Statement  string
	ResultChan chan *ClientStatement
}

func NewClient(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	client := &Client{
		NextStatementID:  0,
		WebSocketConn:    conn,
		URL:              url,
		StatementsToSend: make(chan *StatementRequest),
		IncomingMessages: make(chan *StatementMessage),
		Pending:          map[int]*ClientStatement{},
	}
	go client.handleStatements()
	go client.handleIncoming()
	return client, nil
}

func (c *Client) Close() error {
	return c.WebSocketConn.Close()
}

func (c *Client) handleStatements() {
	for {
		select {
		case request := <-c.StatementsToSend:
			pending := &ClientStatement{
				Conn:        c,
				StatementID: c.NextStatementID,
				Statement:   request.Statement,
				Updates:     make(chan *MessageToClient),
			}
			c.NextStatementID++
			c.Pending[pending.StatementID] = pending
			request.ResultChan <- pending
			c.WebSocketConn.WriteMessage(websocket.TextMessage, []byte(request.Statement))

		case incomingMsg := <-c.IncomingMessages:
			pending := c.Pending[incomingMsg.StatementID]
			pending.Updates <- incomingMsg.Message
		}
	}
}

func (c *Client) handleIncoming() {
	defer c.WebSocketConn.Close()
	for {
		parsedMessage := &StatementMessage{}
		err := c.WebSocketConn.ReadJSON(&parsedMessage)
		if err != nil {
			log.Println("error in handleIncoming:", err)
			return
		}
		c.IncomingMessages <- parsedMessage
	}
}

type ClientStatement struct {
	Conn        *Client
	StatementID int
	Statement   string
	Updates     chan *MessageToClient
}

func (c *Client) Statement(statement string) *ClientStatement {
	resultChan := make(chan *ClientStatement)
	c.StatementsToSend <- &StatementRequest{
		ResultChan: resultChan,
		Statement:  statement,
	}
	return <-resultChan
}

// Exec runs a statement expected to produce a bare ack (SAVE).
func (c *Client) Exec(statement string) (string, error) {
	pending := c.Statement(statement)
	update := <-pending.Updates
	if update.ErrorMessage != nil {
		return "", errors.New(*update.ErrorMessage)
	} else if update.AckMessage != nil {
		return *update.AckMessage, nil
	}
	return "", errors.New("exec result neither error nor ack")
}

// Run runs a statement expected to produce a result payload.
func (c *Client) Run(statement string) (*StatementResult, error) {
	pending := c.Statement(statement)
	update := <-pending.Updates
	if update.ErrorMessage != nil {
		return nil, errors.New(*update.ErrorMessage)
	} else if update.ResultMessage != nil {
		return update.ResultMessage, nil
	}
	return nil, errors.New("run result neither error nor result")
}
