// SPDX-License-Identifier: MIT

// Package evaluation holds the model-evaluation helpers: seeded
// train/test splitting, binary-classifier metrics (precision, recall, F1,
// accuracy) and label confusion matrices.
package evaluation
