package controllers

import "strconv"

func parseInt64Key(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func parseStringKey(raw string) (string, error) {
	return raw, nil
}
