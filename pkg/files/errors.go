package files

import "errors"

var ErrStoreNotSet = errors.New("store not set")
