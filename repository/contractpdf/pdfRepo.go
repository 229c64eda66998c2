// The contract renderer is an external collaborator: we send it the rental id
// and get the finished PDF back, nothing about layout lives here.
package contractpdf

import "context"

type Repo interface {
	RenderContract(ctx context.Context, rentalID int64) (pdf []byte, err error)
}
