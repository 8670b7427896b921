package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// mapInto copies same-named fields from a read model into a response DTO.
// Both sides are defined in this repo, so a failure is a programming error.
func mapInto[T any](src any) T {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("response mapping %T: %v", src, err))
	}
	return dst
}
