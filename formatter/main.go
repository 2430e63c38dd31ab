package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/cvrp"
)

func main() {
	weights := flag.Bool("weights", false, "Include the full edge weight matrix when converting .vrp files")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Printf("No arguments passed!")
		return
	}
	for _, fileName := range flag.Args() {
		switch {
		case strings.HasSuffix(fileName, ".vrp"), strings.HasSuffix(fileName, ".vrp.sz"):
			convertFile(fileName, *weights)
		case strings.HasSuffix(fileName, ".json"):
			fileContent, err := os.ReadFile(fileName)
			if err != nil {
				log.Printf("At %s: %s\n", fileName, err.Error())
				continue
			}
			writeBackFile(string(fileContent), fileName)
		default:
			log.Printf("At %s: unknown file type\n", fileName)
		}
	}
}

// convertFile writes x.vrp (or x.vrp.sz) as x.json next to it.
func convertFile(fileName string, weights bool) {
	inst, err := cvrp.ReadVRPFile(fileName)
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
	if err := inst.Validate(); err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
	}
	if weights {
		inst.EdgeWeights = cvrp.CalcEdgeDist(inst.NodeCoordinates, inst.EdgeWeightType)
	}
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
	base := strings.TrimSuffix(strings.TrimSuffix(fileName, ".sz"), ".vrp")
	writeBackFile(string(jsonInst), base+".json")
}

func writeBackFile(fileContent, fileName string) {
	fileContent = cvrp.SanitizeJSONArrayLineBreaks(fileContent)
	err := os.WriteFile(fileName, []byte(fileContent), 0644)
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
}
