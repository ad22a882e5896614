// SPDX-License-Identifier: MIT

package naivebayes

import "errors"

// ErrStemmer is returned when a snowball stemmer cannot be created.
var ErrStemmer = errors.New("naivebayes: cannot create stemmer")
