package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"git.solver4all.com/azaryc2s/cvrp"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	fmt.Printf("Name,Dimension,Capacity,SumDemands,MaxDemand,Vehicles,AvgRouteSize,RadialBound,Comment\n")
	for _, dirName := range os.Args[1:] {
		dir, err := os.ReadDir(dirName)
		if err != nil {
			log.Printf("Couldn't open directory %s: %s\n", dirName, err.Error())
			continue
		}
		for _, f := range dir {
			if !strings.HasSuffix(f.Name(), ".vrp") && !strings.HasSuffix(f.Name(), ".vrp.sz") {
				continue
			}
			inst, err := cvrp.ReadVRPFile(filepath.Join(dirName, f.Name()))
			if err != nil {
				log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
				continue
			}
			comment := ""
			if err := inst.Validate(); err != nil {
				comment = fmt.Sprintf("ANALYZER: Error = %s", err.Error())
			}
			s := inst.Summarize()
			fmt.Printf("%s,%d,%d,%d,%d,%d,%.2f,%.2f,%s\n", s.Name, s.Dimension, s.Capacity, s.SumDemands, s.MaxDemand, s.Vehicles, s.AvgRouteSize, s.RadialBound, comment)
		}
	}
}
