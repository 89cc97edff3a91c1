package utils

import (
	"fmt"
	"reflect"
	"strconv"
)

// Record is the loose row representation exchanged between the connector,
// the domain services and the controllers.
type Record map[string]interface{}
type Results []Record

func ToString(who interface{}) string {
	if who == nil {
		return ""
	}
	return fmt.Sprintf("%v", who)
}

func ToInt64(who interface{}) int64 {
	if who == nil {
		return 0
	}
	i, err := strconv.Atoi(fmt.Sprintf("%v", who))
	if err != nil {
		return 0
	}
	return int64(i)
}

func ToFloat64(who interface{}) float64 {
	if who == nil {
		return 0
	}
	f, err := strconv.ParseFloat(fmt.Sprintf("%v", who), 64)
	if err != nil {
		return 0
	}
	return f
}

func ToBool(who interface{}) bool {
	return who != nil && fmt.Sprintf("%v", who) == "true"
}

func ToMap(who interface{}) map[string]interface{} {
	if who != nil && reflect.TypeOf(who).Kind() == reflect.Map {
		return who.(map[string]interface{})
	}
	return map[string]interface{}{}
}

func ToList(who interface{}) []interface{} {
	if who == nil {
		return []interface{}{}
	}
	if reflect.TypeOf(who).Kind() == reflect.Slice {
		return who.([]interface{})
	}
	return []interface{}{}
}

func GetString(r Record, key string) string { return ToString(r[key]) }

func GetInt64(r Record, key string) int64 { return ToInt64(r[key]) }

func GetFloat64(r Record, key string) float64 { return ToFloat64(r[key]) }

func GetBool(r Record, key string) bool { return ToBool(r[key]) }

func Compare(who interface{}, what interface{}) bool {
	return who != nil && fmt.Sprintf("%v", who) == fmt.Sprintf("%v", what)
}

// ToResult lifts connector rows into Results.
func ToResult(rows []map[string]interface{}) Results {
	res := Results{}
	for _, row := range rows {
		res = append(res, Record(row))
	}
	return res
}
