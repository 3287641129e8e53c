package db

import (
	"encoding/json"
	"fmt"

	"github.com/Drolfothesgnir/chanpost/markup"
)

// ToMarkup decodes the JSON columns of the row into the renderer's post model.
func (p Post) ToMarkup() (*markup.Post, error) {
	post := &markup.Post{
		ID:      uint64(p.ID),
		OP:      uint64(p.Op),
		Board:   p.Board,
		Time:    p.CreatedAt.Unix(),
		Editing: p.Editing,
		Body:    p.Body,
	}

	if err := unmarshalColumn("commands", p.Commands, &post.Commands); err != nil {
		return nil, err
	}
	if err := unmarshalColumn("links", p.Links, &post.Links); err != nil {
		return nil, err
	}
	if err := unmarshalColumn("backlinks", p.Backlinks, &post.Backlinks); err != nil {
		return nil, err
	}

	return post, nil
}

func unmarshalColumn(name string, data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: post %s: %v", ErrDataCorrupted, name, err)
	}
	return nil
}
