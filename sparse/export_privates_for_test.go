// SPDX-License-Identifier: MIT
package sparse

// CheckHostBuffers exposes checkHostBuffers to the external tests.
var CheckHostBuffers = checkHostBuffers
