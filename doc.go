// Package salesman builds approximate round trips through cities in the plane
// (the Euclidean Travelling Salesman Problem).
//
// Layout:
//
//	geom/          Point, Euclidean Distance, all-pairs DistanceMatrix
//	matrix/        dense row-major matrices shared by the graph algorithms
//	dijkstra/      single-source and all-pairs shortest paths on a matrix
//	prim_kruskal/  minimum spanning trees (Prim, Kruskal) on a matrix
//	dfs/           preorder traversal of a parent-slice tree
//	tsp/           the three tour constructors, 2-opt, validation, Solve
//	cityio/        "<id> <x> <y>" city files
//	generator/     seeded random instances
//	ui/            numbered menu and tour printout
//	report/        JSON run reports with host information
//	config/        YAML configuration with environment overrides
//	logging/       zerolog setup
//	cmd/salesman/  the command-line tool
//
// Quick start:
//
//	cities := []tsp.City{tsp.NewCity(1, 0, 0), tsp.NewCity(2, 10, 0), tsp.NewCity(3, 10, 10)}
//	res, _ := tsp.Solve(cities, tsp.MinimumSpanningTree)
//	fmt.Println(res.Tour, res.Length)
//
// All algorithmic packages are pure: no globals, no logging, safe for
// concurrent use on independent inputs.
package salesman
