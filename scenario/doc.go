// Package scenario loads escape and absorbing-chain problems from disk.
//
// Two on-disk formats are accepted, chosen by file extension:
//
//   - .yaml / .yml: decoded with gopkg.in/yaml.v3;
//   - .json / .jsonc: JSON extended with // and /* */ comments and trailing
//     commas, normalized with github.com/tidwall/jsonc before decoding.
//
// An escape scenario carries a square matrix of transition times and a time
// budget:
//
//	name: refund corridor
//	time_limit: 1
//	times:
//	  - [0, 2, 2, 2, -1]
//	  - [9, 0, 2, 2, -1]
//	  - ...
//
// A chain scenario carries the transition counts of an absorbing Markov
// chain under "counts". Unknown keys are rejected in both formats, so a typo
// such as "timelimit" fails loudly instead of silently defaulting to zero.
package scenario
