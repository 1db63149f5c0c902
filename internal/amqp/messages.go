package amqp

import (
	"encoding/json"
	"time"
)

// TransactionExportMessage is a lightweight notification that a transaction
// should be exported to the bookkeeping sheet. It carries only identifiers;
// the worker fetches the current row from the database, so a stale message
// after an edit still exports the latest version.
type TransactionExportMessage struct {
	WorkspaceID   string    `json:"workspace_id"`
	TransactionID string    `json:"transaction_id"`
	Version       int64     `json:"version"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewTransactionExportMessage(workspaceID, transactionID string, version int64) *TransactionExportMessage {
	return &TransactionExportMessage{
		WorkspaceID:   workspaceID,
		TransactionID: transactionID,
		Version:       version,
		Timestamp:     time.Now(),
	}
}

func (m *TransactionExportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionExportMessageFromJSON(data []byte) (*TransactionExportMessage, error) {
	var msg TransactionExportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
