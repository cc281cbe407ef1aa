// Package digitize converts arbitrary-range float64 sample buffers into
// bounded integer codes through an affine transform.
//
// A sample d is coded as k = Round((d - beta) / alpha) and reconstructed as
// alpha*k + beta. [Derive] picks the smallest alpha that still maps the
// finite data range [dmin, dmax] onto the code interval [kmin, kmax], which
// bounds the reconstruction error by alpha/2. The offset beta is chosen by a
// [Policy]: [PreserveBounds] reconstructs dmin and dmax exactly,
// [PreserveZero] keeps 0 exactly representable so that re-digitizing a
// reconstructed buffer does not drift.
//
// NaN and out-of-range samples are emitted as caller-configurable sentinel
// codes; the defaults clip infinities to the interval ends.
//
// All functions are pure and allocate their own outputs, so independent
// buffers may be processed concurrently without synchronization.
package digitize
