package reservation

import "github.com/sosuke1217/mobilis-ticket-sub000/pkg/dbtx"

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB и *sql.Tx через dbtx.GetExecutor
type DBExecutor = dbtx.Executor
