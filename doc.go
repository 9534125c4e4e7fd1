// Package rebalance computes how to split a single deposit or withdrawal across a
// portfolio so that it gets as close as possible to its target allocation, without
// selling any asset to buy another one ("lazy" rebalancing: only the new money moves).
//
// The main pieces are:
//   - Fraction: exact rational arithmetic, used for every amount and ratio so that the
//     allocation always sums exactly to the contribution.
//   - Asset and Position: an asset as read from the sources, and the same asset once
//     evaluated by Rebalance (target value, deviation, delta).
//   - Rebalance: the water-filling allocation. Deposits go to the most underweight assets
//     first, withdrawals are taken from the most overweight ones first.
//   - Sources: DecodeTargets, DecodeHoldings and DecodeHoldingsJSON read the inputs that
//     NewPortfolio joins into assets.
//   - Report: the tabular presentation of an Allocation, rendered by package renderer.
//
// This package is the foundation of the `rbl` command-line tool.
package rebalance
