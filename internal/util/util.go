package util

import (
	"encoding/json"
	"fmt"
)

func Pprint(v interface{}) {
	bytes, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
