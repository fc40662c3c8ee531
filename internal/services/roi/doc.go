// Package roi restricts contacts to a region of interest.
//
// A contact is kept when its donor or its acceptor lies in the region; that
// residue becomes the ordinate of the heatmap (the donor wins when both do)
// and its partner the abscissa. ReducePairs then collapses atom contacts of
// the same residue pair, keeping the smallest metric value.
package roi
