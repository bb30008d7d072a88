// Package workbench serves the prover over WebSocket: clients send
// textual statements (PROVE, EXTRACT, SAVE, ...) and get back acks,
// errors, or rendered results. Proved theorems persist in a bolt file.
package workbench

import (
	"context"

	"github.com/boltdb/bolt"
	"github.com/gorilla/websocket"
)

type Workbench struct {
	boltDB           *bolt.DB
	store            *Store
	connections      map[connectionID]*connection
	nextConnectionID int

	ctx     context.Context
	metrics *metrics
}

func NewWorkbench(dataFile string) (*Workbench, error) {
	boltDB, openErr := bolt.Open(dataFile, 0600, nil)
	if openErr != nil {
		return nil, openErr
	}

	store, err := newStore(boltDB)
	if err != nil {
		boltDB.Close()
		return nil, err
	}

	wb := &Workbench{
		boltDB:           boltDB,
		store:            store,
		connections:      make(map[connectionID]*connection),
		nextConnectionID: 0,
		ctx:              context.Background(),
	}
	wb.metrics = newMetrics(wb)

	return wb, nil
}

// addConnection hands a websocket to the workbench; blocks until the
// client hangs up.
func (wb *Workbench) addConnection(wsConn *websocket.Conn) {
	conn := newConnection(wsConn, wb, wb.nextConnectionID)
	wb.nextConnectionID++
	wb.connections[conn.id] = conn
	conn.handleStatements()
}

func (wb *Workbench) removeConn(conn *connection) {
	delete(wb.connections, conn.id)
}

func (wb *Workbench) Close() error {
	return wb.boltDB.Close()
}
