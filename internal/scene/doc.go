// SPDX-License-Identifier: MIT
// Package scene holds the small scene model driven by cmd/spatialdemo:
// an orbiting perspective camera and a joint hierarchy whose local poses are
// blended between two keys and chained into world matrices.
package scene
