// Package annotate maps residues to protein domains.
//
// Resolve builds the working domain set from the declared table: domains
// embedded in another one are dropped unless requested, and uncovered
// stretches can be filled with "before"/"between" pseudo-domains. A residue
// pair belongs to every domain containing either of its ends; only pairs at
// least the residue-distance threshold apart count toward domains.
package annotate
