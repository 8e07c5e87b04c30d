package usecase

import "context"

// BulkRun executa operações por id continuando após falhas, diferente de
// uma saga: aqui ninguém compensa, o relatório parcial é o contrato.
type BulkRun struct {
	operations []BulkOperation
}

type BulkOperation struct {
	ID string
	Fn func(context.Context) error
}

func NewBulkRun() *BulkRun {
	return &BulkRun{
		operations: []BulkOperation{},
	}
}

func (b *BulkRun) Add(id string, fn func(context.Context) error) {
	b.operations = append(b.operations, BulkOperation{id, fn})
}

// Execute roda tudo e separa sucesso de falha por id.
func (b *BulkRun) Execute(ctx context.Context) (succeeded []string, failed []BulkFailure) {
	succeeded = []string{}
	failed = []BulkFailure{}

	for _, op := range b.operations {
		if err := op.Fn(ctx); err != nil {
			failed = append(failed, BulkFailure{ID: op.ID, Reason: err.Error()})
			continue
		}
		succeeded = append(succeeded, op.ID)
	}

	return succeeded, failed
}
