// Package tsp builds approximate tours for the Euclidean Travelling Salesman
// Problem: given cities in the plane, return a closed tour that visits each one
// exactly once and keeps the total travel distance low.
//
// Constructors (all start at cities[0] and never fail):
//
//   - SolveNearestNeighbour: greedy walk to the closest unvisited city on the
//     precomputed distance matrix.
//     Complexity: O(n²).
//
//   - SolveShortestPath: runs one priority-queue Dijkstra search per city over
//     the complete distance graph (dijkstra.AllPairs), then performs the same
//     greedy walk on the shortest-path table. On Euclidean input every shortest
//     path is the direct edge, so the tour equals the nearest-neighbour tour; the
//     searches are still carried out in full.
//     Complexity: O(n³ log n).
//
//   - SolveMST: Prim's minimum spanning tree rooted at index 0, preorder walk
//     with children in increasing index order, closed at the root, then refined
//     by TwoOpt.
//     Complexity: O(n² log n) + O(k·n²) for k improving 2-opt passes.
//
// Refinement:
//
//   - TwoOpt / RefineTour: repeated full passes that reverse tour[i+1..j]
//     whenever d(i,j)+d(i+1,j+1) < d(i,i+1)+d(j,j+1) by more than Options.Eps,
//     until a pass makes no move (2-opt local optimum). Endpoints stay fixed.
//
// Degenerate inputs:
//   - n == 0 → empty Tour.
//   - n == 1 → [c, c].
//   - n == 2 → [c0, c1, c0].
//
// Every call allocates its own matrices and queues; nothing is shared between
// calls and the input slice is never modified, so concurrent calls on any city
// sets are safe.
package tsp
